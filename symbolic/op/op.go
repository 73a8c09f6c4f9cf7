package op

type Op rune

const (
	Invalid Op = 0

	EOF Op = 1 << iota
	Number
	Ident
	Func
	Add
	Sub
	Mul
	Div
	Pow
	Begin
	End
)

const (
	groupTok Op = 1 << (iota + 16)
)

const (
	BegGrp = groupTok | Begin
	EndGrp = groupTok | End
)

var mapping = map[Op]string{
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Pow:    "^",
	BegGrp: "(",
	EndGrp: ")",
}

func Symbol(oper Op) string {
	return mapping[oper]
}
