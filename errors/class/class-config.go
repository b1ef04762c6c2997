package class

// MjrConfig - major that classifies errors related with the configuration.
var MjrConfig Major

var (
	// MnrConfigRead is the 'MjrConfig' minor for reading the configuration.
	MnrConfigRead Minor

	// ConfigReadFile is the 'MjrConfig', 'MnrConfigRead' error classification
	// when the config file could not be read.
	ConfigReadFile Class

	// ConfigReadDecode is the 'MjrConfig', 'MnrConfigRead' error classification
	// when the config could not be decoded into the structure.
	ConfigReadDecode Class

	// MnrConfigValue is the 'MjrConfig' minor for invalid configuration values.
	MnrConfigValue Minor

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// when the configuration value doesn't pass the validation.
	ConfigValueInvalid Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "configuration related issues")

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "reading configuration")
	ConfigReadFile = MnrConfigRead.MustRegisterIndex("File", "reading config file failed").Class()
	ConfigReadDecode = MnrConfigRead.MustRegisterIndex("Decode", "decoding config values failed").Class()

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "configuration values")
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "configuration value is not valid").Class()
}
