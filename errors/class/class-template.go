package class

// MjrTemplate - major that classifies errors related with the object templates.
var MjrTemplate Major

var (
	// MnrTemplateCapture is the 'MjrTemplate' minor for capturing prototypes.
	MnrTemplateCapture Minor

	// TemplateCaptureType is the 'MjrTemplate', 'MnrTemplateCapture' error classification
	// when the prototype is not assignable to the template base type.
	TemplateCaptureType Class

	// TemplateCaptureFailed is the 'MjrTemplate', 'MnrTemplateCapture' error classification
	// when the prototype could not be serialized.
	TemplateCaptureFailed Class

	// MnrTemplateCreate is the 'MjrTemplate' minor for creating instances from templates.
	MnrTemplateCreate Minor

	// TemplateCreateFailed is the 'MjrTemplate', 'MnrTemplateCreate' error classification
	// when the snapshot could not be deserialized.
	TemplateCreateFailed Class
)

func registerTemplateClasses() {
	MjrTemplate = MustRegisterMajor("Template", "object templates")

	MnrTemplateCapture = MjrTemplate.MustRegisterMinor("Capture", "capturing prototypes")
	TemplateCaptureType = MnrTemplateCapture.MustRegisterIndex("Type", "prototype type not assignable").Class()
	TemplateCaptureFailed = MnrTemplateCapture.MustRegisterIndex("Failed", "prototype serialization failed").Class()

	MnrTemplateCreate = MjrTemplate.MustRegisterMinor("Create", "creating template instances")
	TemplateCreateFailed = MnrTemplateCreate.MustRegisterIndex("Failed", "snapshot deserialization failed").Class()
}
