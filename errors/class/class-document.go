package class

// MjrDocument - major that classifies errors related with the element tree documents.
var MjrDocument Major

var (
	// MnrDocumentSyntax is the 'MjrDocument' minor for the text syntax issues.
	MnrDocumentSyntax Minor

	// DocumentSyntaxInvalid is the 'MjrDocument', 'MnrDocumentSyntax' error classification
	// when the text is not a well formed document.
	DocumentSyntaxInvalid Class

	// DocumentSyntaxNoRoot is the 'MjrDocument', 'MnrDocumentSyntax' error classification
	// when the document has no root element.
	DocumentSyntaxNoRoot Class

	// MnrDocumentEncode is the 'MjrDocument' minor for encoding the element tree.
	MnrDocumentEncode Minor

	// DocumentEncodeOutput is the 'MjrDocument', 'MnrDocumentEncode' error classification
	// when writing to the output failed.
	DocumentEncodeOutput Class

	// DocumentEncodeName is the 'MjrDocument', 'MnrDocumentEncode' error classification
	// for elements or attributes with invalid names.
	DocumentEncodeName Class

	// MnrDocumentLinks is the 'MjrDocument' minor for the identity and reference markers.
	MnrDocumentLinks Minor

	// DocumentLinksDuplicateID is the 'MjrDocument', 'MnrDocumentLinks' error classification
	// when the same id is defined more than once.
	DocumentLinksDuplicateID Class

	// DocumentLinksUnknownRef is the 'MjrDocument', 'MnrDocumentLinks' error classification
	// when the reference points to an id not defined before.
	DocumentLinksUnknownRef Class

	// DocumentLinksMissingExternal is the 'MjrDocument', 'MnrDocumentLinks' error classification
	// when the external document path could not be read.
	DocumentLinksMissingExternal Class
)

func registerDocumentClasses() {
	MjrDocument = MustRegisterMajor("Document", "element tree document issues")

	MnrDocumentSyntax = MjrDocument.MustRegisterMinor("Syntax", "document text syntax")
	DocumentSyntaxInvalid = MnrDocumentSyntax.MustRegisterIndex("Invalid", "malformed document text").Class()
	DocumentSyntaxNoRoot = MnrDocumentSyntax.MustRegisterIndex("No Root", "document without root element").Class()

	MnrDocumentEncode = MjrDocument.MustRegisterMinor("Encode", "document encoding")
	DocumentEncodeOutput = MnrDocumentEncode.MustRegisterIndex("Output", "writing encoded document failed").Class()
	DocumentEncodeName = MnrDocumentEncode.MustRegisterIndex("Name", "invalid element or attribute name").Class()

	MnrDocumentLinks = MjrDocument.MustRegisterMinor("Links", "identity and reference markers")
	DocumentLinksDuplicateID = MnrDocumentLinks.MustRegisterIndex("Duplicate ID", "id defined more than once").Class()
	DocumentLinksUnknownRef = MnrDocumentLinks.MustRegisterIndex("Unknown Ref", "reference to undefined id").Class()
	DocumentLinksMissingExternal = MnrDocumentLinks.MustRegisterIndex("Missing External", "external document not found").Class()
}
