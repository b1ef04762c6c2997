package class

// MjrSerialization - major that classifies errors related with the object graph serialization.
var MjrSerialization Major

/**

Serialization Read

*/
var (
	// MnrSerializationRead is the 'MjrSerialization' minor classification
	// for the deserialization process.
	MnrSerializationRead Minor

	// SerializationParsing is the 'MjrSerialization', 'MnrSerializationRead' error classification
	// for malformed values - i.e. non numeric reference or unknown enum name.
	SerializationParsing Class

	// SerializationNumberOverflow is the 'MjrSerialization', 'MnrSerializationRead' error classification
	// for numbers out of range of the target type.
	SerializationNumberOverflow Class

	// SerializationUnresolvedType is the 'MjrSerialization', 'MnrSerializationRead' error classification
	// when the type marker could not be mapped into a type.
	SerializationUnresolvedType Class

	// SerializationUnresolvedContract is the 'MjrSerialization', 'MnrSerializationRead' error classification
	// when no contract matches given node.
	SerializationUnresolvedContract Class

	// SerializationMissingAttribute is the 'MjrSerialization', 'MnrSerializationRead' error classification
	// when the element misses required attribute.
	SerializationMissingAttribute Class

	// SerializationInstantiate is the 'MjrSerialization', 'MnrSerializationRead' error classification
	// when the instance of given type could not be created.
	SerializationInstantiate Class
)

/**

Serialization Write

*/
var (
	// MnrSerializationWrite is the 'MjrSerialization' minor classification
	// for the serialization process.
	MnrSerializationWrite Minor

	// SerializationWrite is the 'MjrSerialization', 'MnrSerializationWrite' general error classification.
	SerializationWrite Class

	// SerializationWriteUnsupported is the 'MjrSerialization', 'MnrSerializationWrite' error classification
	// when the value could not be written by any contract.
	SerializationWriteUnsupported Class
)

/**

Serialization Reference

*/
var (
	// MnrSerializationReference is the 'MjrSerialization' minor classification for references.
	MnrSerializationReference Minor

	// SerializationReferenceUnknown is the 'MjrSerialization', 'MnrSerializationReference' error classification
	// for references to ids not registered in the session.
	SerializationReferenceUnknown Class

	// SerializationReferenceExternal is the 'MjrSerialization', 'MnrSerializationReference' error classification
	// when the external document could not be loaded.
	SerializationReferenceExternal Class
)

/**

Serialization Internal

*/
var (
	// MnrSerializationInternal is the 'MjrSerialization' minor classification for internal failures.
	MnrSerializationInternal Minor

	// SerializationInternal is the 'MjrSerialization', 'MnrSerializationInternal' error classification
	// for recovered contract failures.
	SerializationInternal Class
)

func registerSerializationClasses() {
	MjrSerialization = MustRegisterMajor("Serialization", "object graph serialization")

	MnrSerializationRead = MjrSerialization.MustRegisterMinor("Read", "reading object graphs")
	SerializationParsing = MnrSerializationRead.MustRegisterIndex("Parsing", "malformed value or attribute").Class()
	SerializationNumberOverflow = MnrSerializationRead.MustRegisterIndex("Number Overflow", "value out of range for the numeric type").Class()
	SerializationUnresolvedType = MnrSerializationRead.MustRegisterIndex("Unresolved Type", "type name could not be resolved").Class()
	SerializationUnresolvedContract = MnrSerializationRead.MustRegisterIndex("Unresolved Contract", "no contract matches the node").Class()
	SerializationMissingAttribute = MnrSerializationRead.MustRegisterIndex("Missing Attribute", "required attribute not found").Class()
	SerializationInstantiate = MnrSerializationRead.MustRegisterIndex("Instantiate", "instance could not be created").Class()

	MnrSerializationWrite = MjrSerialization.MustRegisterMinor("Write", "writing object graphs")
	SerializationWrite = MustNewMinorClass(MnrSerializationWrite)
	SerializationWriteUnsupported = MnrSerializationWrite.MustRegisterIndex("Unsupported", "value not supported by any contract").Class()

	MnrSerializationReference = MjrSerialization.MustRegisterMinor("Reference", "internal and external references")
	SerializationReferenceUnknown = MnrSerializationReference.MustRegisterIndex("Unknown", "reference to unknown id").Class()
	SerializationReferenceExternal = MnrSerializationReference.MustRegisterIndex("External", "external document could not be loaded").Class()

	MnrSerializationInternal = MjrSerialization.MustRegisterMinor("Internal", "internal failures")
	SerializationInternal = MustNewMinorClass(MnrSerializationInternal)
}
