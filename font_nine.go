package segdisplay

// Nine segment layout: the seven segment bars plus two diagonals that
// together form a slash through the digit centre.
//
//	 AAA
//	F  HB
//	 GGG
//	EI  C
//	 DDD
const (
	nineA Glyph = 1 << iota
	nineB
	nineC
	nineD
	nineE
	nineF
	nineG
	nineH
	nineI
)

var nineSegmentFont = FontTable{
	{' ', 0},
	{'"', nineB | nineF},
	{'(', nineA | nineD | nineE | nineF},
	{')', nineA | nineB | nineC | nineD},
	{'-', nineG},
	{'/', nineH | nineI},
	{'0', nineA | nineB | nineC | nineD | nineE | nineF | nineH | nineI},
	{'1', nineB | nineC},
	{'2', nineA | nineB | nineD | nineE | nineG},
	{'3', nineA | nineB | nineC | nineD | nineG},
	{'4', nineB | nineC | nineF | nineG},
	{'5', nineA | nineC | nineD | nineF | nineG},
	{'6', nineA | nineC | nineD | nineE | nineF | nineG},
	{'7', nineA | nineH | nineI},
	{'8', nineA | nineB | nineC | nineD | nineE | nineF | nineG},
	{'9', nineA | nineB | nineC | nineD | nineF | nineG},
	{'=', nineD | nineG},
	{'?', nineA | nineB | nineG | nineI},
	{'A', nineA | nineB | nineC | nineE | nineF | nineG},
	{'B', nineC | nineD | nineE | nineF | nineG},
	{'C', nineA | nineD | nineE | nineF},
	{'D', nineB | nineC | nineD | nineE | nineG},
	{'E', nineA | nineD | nineE | nineF | nineG},
	{'F', nineA | nineE | nineF | nineG},
	{'G', nineA | nineC | nineD | nineE | nineF},
	{'H', nineB | nineC | nineE | nineF | nineG},
	{'I', nineE | nineF},
	{'J', nineB | nineC | nineD | nineE},
	{'K', nineC | nineE | nineF | nineG | nineH},
	{'L', nineD | nineE | nineF},
	{'N', nineA | nineB | nineC | nineE | nineF},
	{'O', nineA | nineB | nineC | nineD | nineE | nineF},
	{'P', nineA | nineB | nineE | nineF | nineG},
	{'Q', nineA | nineB | nineC | nineF | nineG},
	{'R', nineA | nineB | nineE | nineF | nineG | nineI},
	{'S', nineA | nineC | nineD | nineF | nineG},
	{'T', nineD | nineE | nineF | nineG},
	{'U', nineB | nineC | nineD | nineE | nineF},
	{'Y', nineB | nineC | nineD | nineF | nineG},
	{'Z', nineA | nineD | nineH | nineI},
	{'[', nineA | nineD | nineE | nineF},
	{']', nineA | nineB | nineC | nineD},
	{'_', nineD},
	{'a', nineA | nineB | nineC | nineD | nineE | nineG},
	{'b', nineC | nineD | nineE | nineF | nineG},
	{'c', nineD | nineE | nineG},
	{'d', nineB | nineC | nineD | nineE | nineG},
	{'e', nineA | nineB | nineD | nineE | nineF | nineG},
	{'f', nineA | nineE | nineF | nineG},
	{'g', nineA | nineB | nineC | nineD | nineF | nineG},
	{'h', nineC | nineE | nineF | nineG},
	{'i', nineC},
	{'j', nineC | nineD},
	{'k', nineC | nineE | nineF | nineG | nineH},
	{'l', nineE | nineF},
	{'n', nineC | nineE | nineG},
	{'o', nineC | nineD | nineE | nineG},
	{'p', nineA | nineB | nineE | nineF | nineG},
	{'q', nineA | nineB | nineC | nineF | nineG},
	{'r', nineE | nineG},
	{'s', nineA | nineC | nineD | nineF | nineG},
	{'t', nineD | nineE | nineF | nineG},
	{'u', nineC | nineD | nineE},
	{'y', nineB | nineC | nineD | nineF | nineG},
	{'z', nineD | nineG | nineI},
	{'|', nineE | nineF},
	{'°', nineA | nineB | nineF | nineG},
}
