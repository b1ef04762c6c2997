package class

// MjrCommon is the common major errors classification.
var MjrCommon Major

var (
	// MnrCommonLogger is the 'MjrCommon' minor error classification
	// for logger issues.
	MnrCommonLogger Minor

	// CommonLoggerNotImplement is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for logger's that doesn't implement some interface.
	CommonLoggerNotImplement Class

	// CommonLoggerUnknownLevel is the 'MjrCommon', 'MnrCommonLogger' error classification
	// for unknown level logger.
	CommonLoggerUnknownLevel Class

	// MnrCommonFile is the 'MjrCommon' minor error classification for the file system issues.
	MnrCommonFile Minor

	// CommonFileOpen is the 'MjrCommon', 'MnrCommonFile' error classification
	// when the file could not be opened or read.
	CommonFileOpen Class

	// CommonFileWrite is the 'MjrCommon', 'MnrCommonFile' error classification
	// when the file could not be written.
	CommonFileWrite Class
)

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common", "common error classification")

	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "common logger issues")
	CommonLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement", "logger issues that doesn't implement some interface").Class()
	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "unknown level issue").Class()

	MnrCommonFile = MjrCommon.MustRegisterMinor("File", "file system issues")
	CommonFileOpen = MnrCommonFile.MustRegisterIndex("Open", "opening or reading file failed").Class()
	CommonFileWrite = MnrCommonFile.MustRegisterIndex("Write", "writing file failed").Class()
}
