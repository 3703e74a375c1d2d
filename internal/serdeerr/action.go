package serdeerr

type Action int8

const (
	Unknown Action = iota
	Encode
	Decode
	Parse
)

func (a Action) String() string {
	switch a {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	case Parse:
		return "parse"
	default:
		return "unknown"
	}
}
