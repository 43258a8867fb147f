package commands

// Error messages
const (
	ErrConfigLoaderUnavailable   = "config loader unavailable"
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrHistoryStoreUnavailable   = "history store unavailable"
	ErrTranslatorUnavailable     = "translator unavailable"
	ErrNoInput                   = "no input: pass an argument or pipe lines on stdin"
	ErrQueryRequired             = "search query required"
	ErrDiagnosticsFailed         = "diagnostics found problems"
	ErrMappingsFileExists        = "mappings file already exists (use --force to overwrite)"
	ErrShellInstallerUnavailable = "shell installer unavailable"
	ErrShellNotDetected          = "cannot detect shell from $SHELL; pass --shell zsh|bash|all"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgHistoryCleared    = "History cleared."
	MsgNoCommands        = "No mapped commands for this OS pair."
	MsgNoMatches         = "No commands match the filter."
)

// Output constants
const (
	// TimestampFormat is used for absolute times in structured history output.
	TimestampFormat = "2006-01-02 15:04:05"
	// ArrowSeparator joins source and target in listings.
	ArrowSeparator = " -> "
)
