package segdisplay

// Seven segment layout.
//
//	 AAA
//	F   B
//	 GGG
//	E   C
//	 DDD
const (
	sevenA Glyph = 1 << iota
	sevenB
	sevenC
	sevenD
	sevenE
	sevenF
	sevenG
)

var sevenSegmentFont = FontTable{
	{' ', 0},
	{'"', sevenB | sevenF},
	{'(', sevenA | sevenD | sevenE | sevenF},
	{')', sevenA | sevenB | sevenC | sevenD},
	{'-', sevenG},
	{'0', sevenA | sevenB | sevenC | sevenD | sevenE | sevenF},
	{'1', sevenB | sevenC},
	{'2', sevenA | sevenB | sevenD | sevenE | sevenG},
	{'3', sevenA | sevenB | sevenC | sevenD | sevenG},
	{'4', sevenB | sevenC | sevenF | sevenG},
	{'5', sevenA | sevenC | sevenD | sevenF | sevenG},
	{'6', sevenA | sevenC | sevenD | sevenE | sevenF | sevenG},
	{'7', sevenA | sevenB | sevenC},
	{'8', sevenA | sevenB | sevenC | sevenD | sevenE | sevenF | sevenG},
	{'9', sevenA | sevenB | sevenC | sevenD | sevenF | sevenG},
	{'=', sevenD | sevenG},
	{'?', sevenA | sevenB | sevenE | sevenG},
	{'A', sevenA | sevenB | sevenC | sevenE | sevenF | sevenG},
	{'B', sevenC | sevenD | sevenE | sevenF | sevenG},
	{'C', sevenA | sevenD | sevenE | sevenF},
	{'D', sevenB | sevenC | sevenD | sevenE | sevenG},
	{'E', sevenA | sevenD | sevenE | sevenF | sevenG},
	{'F', sevenA | sevenE | sevenF | sevenG},
	{'G', sevenA | sevenC | sevenD | sevenE | sevenF},
	{'H', sevenB | sevenC | sevenE | sevenF | sevenG},
	{'I', sevenE | sevenF},
	{'J', sevenB | sevenC | sevenD | sevenE},
	{'L', sevenD | sevenE | sevenF},
	{'N', sevenA | sevenB | sevenC | sevenE | sevenF},
	{'O', sevenA | sevenB | sevenC | sevenD | sevenE | sevenF},
	{'P', sevenA | sevenB | sevenE | sevenF | sevenG},
	{'Q', sevenA | sevenB | sevenC | sevenF | sevenG},
	{'R', sevenA | sevenE | sevenF},
	{'S', sevenA | sevenC | sevenD | sevenF | sevenG},
	{'T', sevenD | sevenE | sevenF | sevenG},
	{'U', sevenB | sevenC | sevenD | sevenE | sevenF},
	{'Y', sevenB | sevenC | sevenD | sevenF | sevenG},
	{'Z', sevenA | sevenB | sevenD | sevenE | sevenG},
	{'[', sevenA | sevenD | sevenE | sevenF},
	{']', sevenA | sevenB | sevenC | sevenD},
	{'_', sevenD},
	{'a', sevenA | sevenB | sevenC | sevenD | sevenE | sevenG},
	{'b', sevenC | sevenD | sevenE | sevenF | sevenG},
	{'c', sevenD | sevenE | sevenG},
	{'d', sevenB | sevenC | sevenD | sevenE | sevenG},
	{'e', sevenA | sevenB | sevenD | sevenE | sevenF | sevenG},
	{'f', sevenA | sevenE | sevenF | sevenG},
	{'g', sevenA | sevenB | sevenC | sevenD | sevenF | sevenG},
	{'h', sevenC | sevenE | sevenF | sevenG},
	{'i', sevenC},
	{'j', sevenC | sevenD},
	{'l', sevenE | sevenF},
	{'n', sevenC | sevenE | sevenG},
	{'o', sevenC | sevenD | sevenE | sevenG},
	{'p', sevenA | sevenB | sevenE | sevenF | sevenG},
	{'q', sevenA | sevenB | sevenC | sevenF | sevenG},
	{'r', sevenE | sevenG},
	{'s', sevenA | sevenC | sevenD | sevenF | sevenG},
	{'t', sevenD | sevenE | sevenF | sevenG},
	{'u', sevenC | sevenD | sevenE},
	{'y', sevenB | sevenC | sevenD | sevenF | sevenG},
	{'|', sevenE | sevenF},
	{'°', sevenA | sevenB | sevenF | sevenG},
}
