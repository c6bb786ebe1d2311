package segdisplay

// Sixteen segment layout.
//
//	 A1 A2
//	F H I J B
//	 G1 G2
//	E M L K C
//	 D1 D2
const (
	sixteenA1 Glyph = 1 << iota
	sixteenA2
	sixteenB
	sixteenC
	sixteenD2
	sixteenD1
	sixteenE
	sixteenF
	sixteenG1
	sixteenG2
	sixteenH
	sixteenI
	sixteenJ
	sixteenK
	sixteenL
	sixteenM
)

const (
	sixteenA = sixteenA1 | sixteenA2
	sixteenD = sixteenD1 | sixteenD2
	sixteenG = sixteenG1 | sixteenG2
)

var sixteenSegmentFont = FontTable{
	{' ', 0},
	{'!', sixteenI | sixteenD1},
	{'"', sixteenF | sixteenI},
	{'#', sixteenB | sixteenC | sixteenD | sixteenG | sixteenI | sixteenL},
	{'$', sixteenA | sixteenC | sixteenD | sixteenF | sixteenG | sixteenI | sixteenL},
	{'%', sixteenA1 | sixteenC | sixteenD2 | sixteenF | sixteenG | sixteenI | sixteenJ | sixteenL | sixteenM},
	{'&', sixteenA1 | sixteenD | sixteenE | sixteenG1 | sixteenH | sixteenI | sixteenK},
	{'(', sixteenJ | sixteenK},
	{')', sixteenH | sixteenM},
	{'*', sixteenG | sixteenH | sixteenI | sixteenJ | sixteenK | sixteenL | sixteenM},
	{'+', sixteenG | sixteenI | sixteenL},
	{',', sixteenM},
	{'-', sixteenG},
	{'/', sixteenJ | sixteenM},
	{'0', sixteenA | sixteenB | sixteenC | sixteenD | sixteenE | sixteenF | sixteenJ | sixteenM},
	{'1', sixteenB | sixteenC | sixteenJ},
	{'2', sixteenA | sixteenB | sixteenD | sixteenE | sixteenG},
	{'3', sixteenA | sixteenB | sixteenC | sixteenD | sixteenG2},
	{'4', sixteenB | sixteenC | sixteenF | sixteenG},
	{'5', sixteenA | sixteenC | sixteenD | sixteenF | sixteenG},
	{'6', sixteenA | sixteenC | sixteenD | sixteenE | sixteenF | sixteenG},
	{'7', sixteenA | sixteenB | sixteenC},
	{'8', sixteenA | sixteenB | sixteenC | sixteenD | sixteenE | sixteenF | sixteenG},
	{'9', sixteenA | sixteenB | sixteenC | sixteenD | sixteenF | sixteenG},
	{';', sixteenI | sixteenM},
	{'<', sixteenJ | sixteenK},
	{'=', sixteenD | sixteenG},
	{'>', sixteenH | sixteenM},
	{'?', sixteenA | sixteenB | sixteenG2 | sixteenL},
	{'@', sixteenA | sixteenB | sixteenD | sixteenE | sixteenF | sixteenG2 | sixteenI},
	{'A', sixteenA | sixteenB | sixteenC | sixteenE | sixteenF | sixteenG},
	{'B', sixteenA | sixteenB | sixteenC | sixteenD | sixteenG2 | sixteenI | sixteenL},
	{'C', sixteenA | sixteenD | sixteenE | sixteenF},
	{'D', sixteenA | sixteenB | sixteenC | sixteenD | sixteenI | sixteenL},
	{'E', sixteenA | sixteenD | sixteenE | sixteenF | sixteenG1},
	{'F', sixteenA | sixteenE | sixteenF | sixteenG1},
	{'G', sixteenA | sixteenC | sixteenD | sixteenE | sixteenF | sixteenG2},
	{'H', sixteenB | sixteenC | sixteenE | sixteenF | sixteenG},
	{'I', sixteenA | sixteenD | sixteenI | sixteenL},
	{'J', sixteenB | sixteenC | sixteenD | sixteenE},
	{'K', sixteenE | sixteenF | sixteenG1 | sixteenJ | sixteenK},
	{'L', sixteenD | sixteenE | sixteenF},
	{'M', sixteenB | sixteenC | sixteenE | sixteenF | sixteenH | sixteenJ},
	{'N', sixteenB | sixteenC | sixteenE | sixteenF | sixteenH | sixteenK},
	{'O', sixteenA | sixteenB | sixteenC | sixteenD | sixteenE | sixteenF},
	{'P', sixteenA | sixteenB | sixteenE | sixteenF | sixteenG},
	{'Q', sixteenA | sixteenB | sixteenC | sixteenD | sixteenE | sixteenF | sixteenK},
	{'R', sixteenA | sixteenB | sixteenE | sixteenF | sixteenG | sixteenK},
	{'S', sixteenA | sixteenC | sixteenD | sixteenF | sixteenG},
	{'T', sixteenA | sixteenI | sixteenL},
	{'U', sixteenB | sixteenC | sixteenD | sixteenE | sixteenF},
	{'V', sixteenE | sixteenF | sixteenJ | sixteenM},
	{'W', sixteenB | sixteenC | sixteenE | sixteenF | sixteenK | sixteenM},
	{'X', sixteenH | sixteenJ | sixteenK | sixteenM},
	{'Y', sixteenH | sixteenJ | sixteenL},
	{'Z', sixteenA | sixteenD | sixteenJ | sixteenM},
	{'[', sixteenA2 | sixteenD2 | sixteenI | sixteenL},
	{'\\', sixteenH | sixteenK},
	{']', sixteenA1 | sixteenD1 | sixteenI | sixteenL},
	{'^', sixteenK | sixteenM},
	{'_', sixteenD},
	{'`', sixteenH},
	{'a', sixteenD | sixteenE | sixteenG1 | sixteenL},
	{'b', sixteenD1 | sixteenE | sixteenF | sixteenG1 | sixteenL},
	{'c', sixteenD1 | sixteenE | sixteenG1},
	{'d', sixteenB | sixteenC | sixteenD2 | sixteenG2 | sixteenL},
	{'e', sixteenD1 | sixteenE | sixteenG1 | sixteenM},
	{'f', sixteenA2 | sixteenG | sixteenI | sixteenL},
	{'g', sixteenA1 | sixteenD1 | sixteenF | sixteenG1 | sixteenI | sixteenL},
	{'h', sixteenE | sixteenF | sixteenG1 | sixteenL},
	{'i', sixteenL},
	{'j', sixteenD1 | sixteenE | sixteenL},
	{'k', sixteenI | sixteenJ | sixteenK | sixteenL},
	{'l', sixteenE | sixteenF},
	{'m', sixteenC | sixteenE | sixteenG | sixteenL},
	{'n', sixteenE | sixteenG1 | sixteenL},
	{'o', sixteenD1 | sixteenE | sixteenG1 | sixteenL},
	{'p', sixteenA1 | sixteenE | sixteenF | sixteenG1 | sixteenI},
	{'q', sixteenA1 | sixteenF | sixteenG1 | sixteenI | sixteenL},
	{'r', sixteenE | sixteenG1},
	{'s', sixteenA1 | sixteenD1 | sixteenF | sixteenG1 | sixteenL},
	{'t', sixteenD1 | sixteenE | sixteenF | sixteenG1},
	{'u', sixteenD1 | sixteenE | sixteenL},
	{'v', sixteenE | sixteenM},
	{'w', sixteenC | sixteenE | sixteenK | sixteenM},
	{'x', sixteenH | sixteenJ | sixteenK | sixteenM},
	{'y', sixteenB | sixteenC | sixteenD2 | sixteenG2 | sixteenI},
	{'z', sixteenD1 | sixteenG1 | sixteenM},
	{'{', sixteenA2 | sixteenD2 | sixteenG1 | sixteenI | sixteenL},
	{'|', sixteenI | sixteenL},
	{'}', sixteenA1 | sixteenD1 | sixteenG2 | sixteenI | sixteenL},
	{'°', sixteenA1 | sixteenF | sixteenG1 | sixteenI},
}
