package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldPath        = "path"
	FieldLine        = "line"
	FieldField       = "field"
	FieldRaw         = "raw"
	FieldStudentName = "student_name"
	FieldStudentID   = "student_id"
	FieldDate        = "date"
	FieldMonth       = "month"
	FieldIncome      = "total_income"
	FieldRows        = "rows"
	FieldBackend     = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentStore   = "store"
	ComponentSchema  = "schema"
	ComponentStorage = "storage"
	ComponentService = "service"
	ComponentBackend = "backend"
	ComponentExport  = "export"
)

// Operations defines standard operation names
const (
	OpAppend  = "append"
	OpQuery   = "query"
	OpMigrate = "migrate"
	OpMirror  = "mirror"
	OpExport  = "export"
	OpSummary = "summary"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
