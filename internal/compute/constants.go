package compute

// CommandType is the kind of a parsed command
type CommandType string

// Command types
const (
	CommandSet    CommandType = "SET"
	CommandGet    CommandType = "GET"
	CommandRemove CommandType = "REMOVE"
	CommandKeys   CommandType = "KEYS"
	CommandValues CommandType = "VALUES"
	CommandList   CommandType = "LIST"
	CommandLen    CommandType = "LEN"
	CommandClear  CommandType = "CLEAR"
	CommandHelp   CommandType = "HELP"
	CommandExit   CommandType = "EXIT"
)

// commandSpec describes the minimum token count (name included) and usage of a command
type commandSpec struct {
	minTokens int
	usage     string
}

var commands = map[CommandType]commandSpec{
	CommandSet:    {minTokens: 3, usage: "SET <key> <value>"},
	CommandGet:    {minTokens: 2, usage: "GET <key>"},
	CommandRemove: {minTokens: 2, usage: "REMOVE <key>"},
	CommandKeys:   {minTokens: 1, usage: "KEYS"},
	CommandValues: {minTokens: 1, usage: "VALUES"},
	CommandList:   {minTokens: 1, usage: "LIST"},
	CommandLen:    {minTokens: 1, usage: "LEN"},
	CommandClear:  {minTokens: 1, usage: "CLEAR"},
	CommandHelp:   {minTokens: 1, usage: "HELP"},
	CommandExit:   {minTokens: 1, usage: "EXIT"},
}

// Response messages
const (
	ResponseCleared  = "Store cleared"
	ResponseGoodbye  = "Goodbye!"
	ResponseNoKeys   = "No keys present"
	ResponseNoValues = "No values present"
	ResponseEmpty    = "Store is empty"
	WelcomeMessage   = "Welcome to the key-value store!"
)

// HelpMessage is the static command menu
const HelpMessage = `
=== KEY-VALUE STORE ===
1. SET <key> <value>    - Insert/update a key
2. GET <key>            - Retrieve the value of a key
3. REMOVE <key>         - Remove a key
4. KEYS                 - Show all keys
5. VALUES               - Show all values
6. LIST                 - Show all key-value pairs
7. LEN                  - Show the number of elements
8. CLEAR                - Clear the entire store
9. HELP                 - Show this menu
10. EXIT                - Exit the program
=======================`
