package class

// MjrMapping - major that classifies errors related with the type and property mapping.
var MjrMapping Major

var (
	// MnrMappingType is the 'MjrMapping' minor for the type registry issues.
	MnrMappingType Minor

	// MappingTypeNameConflict is the 'MjrMapping', 'MnrMappingType' error classification
	// when two different types are registered under the same name.
	MappingTypeNameConflict Class

	// MappingTypeUnresolved is the 'MjrMapping', 'MnrMappingType' error classification
	// when a type name could not be resolved.
	MappingTypeUnresolved Class

	// MappingTypeInvalid is the 'MjrMapping', 'MnrMappingType' error classification
	// when the provided type could not be used for the operation.
	MappingTypeInvalid Class

	// MnrMappingEnum is the 'MjrMapping' minor for enum registrations.
	MnrMappingEnum Minor

	// MappingEnumInvalid is the 'MjrMapping', 'MnrMappingEnum' error classification
	// for invalid enum members.
	MappingEnumInvalid Class

	// MnrMappingProperty is the 'MjrMapping' minor for the property access.
	MnrMappingProperty Minor

	// MappingPropertyNotFound is the 'MjrMapping', 'MnrMappingProperty' error classification
	// when the property or field doesn't exist.
	MappingPropertyNotFound Class

	// MappingPropertyValue is the 'MjrMapping', 'MnrMappingProperty' error classification
	// when the value is not assignable to the property or field.
	MappingPropertyValue Class

	// MappingPropertyMethod is the 'MjrMapping', 'MnrMappingProperty' error classification
	// when the synchronization method doesn't exist or has invalid signature.
	MappingPropertyMethod Class
)

func registerMappingClasses() {
	MjrMapping = MustRegisterMajor("Mapping", "type and property mapping")

	MnrMappingType = MjrMapping.MustRegisterMinor("Type", "type registry")
	MappingTypeNameConflict = MnrMappingType.MustRegisterIndex("Name Conflict", "type name registered for another type").Class()
	MappingTypeUnresolved = MnrMappingType.MustRegisterIndex("Unresolved", "type name could not be resolved").Class()
	MappingTypeInvalid = MnrMappingType.MustRegisterIndex("Invalid", "invalid type for the operation").Class()

	MnrMappingEnum = MjrMapping.MustRegisterMinor("Enum", "enum registrations")
	MappingEnumInvalid = MnrMappingEnum.MustRegisterIndex("Invalid", "invalid enum member").Class()

	MnrMappingProperty = MjrMapping.MustRegisterMinor("Property", "property and field access")
	MappingPropertyNotFound = MnrMappingProperty.MustRegisterIndex("Not Found", "property or field not found").Class()
	MappingPropertyValue = MnrMappingProperty.MustRegisterIndex("Value", "value not assignable").Class()
	MappingPropertyMethod = MnrMappingProperty.MustRegisterIndex("Method", "invalid synchronization method").Class()
}
