package giga

// CommandKind identifies an editor command.
type CommandKind int

// Editor commands.
const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdMove // DX, DY
	CmdLineStart
	CmdLineEnd
	CmdTop
	CmdBottom
	CmdHalfPageUp
	CmdHalfPageDown
	CmdSave
	CmdEnterInsert
	CmdExitInsert
	CmdInsert // Runes
	CmdNewLine
	CmdDelete
	CmdDeleteLine
	CmdYankLine
	CmdPaste
	CmdEnterRename
	CmdRenameInput // Runes
	CmdRenameDelete
	CmdConfirmRename
	CmdCancelRename
	CmdRedraw
	CmdBlock // Block
)

// Command is an action produced by the keymap.
type Command struct {
	Kind   CommandKind
	DX, DY int
	Runes  []rune
	Block  []Command
}

// Move returns a cursor movement command.
func Move(dx, dy int) Command {
	return Command{Kind: CmdMove, DX: dx, DY: dy}
}

// Block returns a command running cmds in order.
func Block(cmds ...Command) Command {
	return Command{Kind: CmdBlock, Block: cmds}
}
