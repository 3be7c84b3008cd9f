package types

// An OptionType identifies a header option record.
type OptionType uint8

const (
	OptFilename OptionType = 0 // name of the object file
	OptOS       OptionType = 1 // operating system information
	OptProgram  OptionType = 2 // assembler or linker that wrote the file
	OptAuthor   OptionType = 3
	OptCreated  OptionType = 4 // creation date and time

	// OptELFMachine is the custom option used by ELF conversion tools
	// to record the original machine type and flags.
	OptELFMachine OptionType = 'E'
)

// IsString reports whether the option's payload is conventionally
// printable text rather than raw bytes.
func (t OptionType) IsString() bool {
	switch t {
	case OptFilename, OptProgram, OptAuthor, OptCreated:
		return true
	}
	return false
}

// An Option is one variable-length metadata record following the
// header. Data excludes the two length and type prefix bytes. A
// zero-length record terminates the option list and is not represented
// as an Option.
type Option struct {
	Type OptionType
	Data []byte
}

// OS identifies the operating system named in the first payload byte
// of an OptOS option.
type OS uint8

const (
	OSOSA65   OS = 1
	OSLunix   OS = 2
	OSCC65    OS = 3 // cc65 generic module
	OSOpenCBM OS = 4 // opencbm floppy module
)

var osStrings = []intName{
	{uint32(OSOSA65), "OSA/65"},
	{uint32(OSLunix), "Lunix"},
	{uint32(OSCC65), "cc65"},
	{uint32(OSOpenCBM), "opencbm"},
}

func (o OS) String() string { return stringName(uint32(o), osStrings, "os-%d") }
