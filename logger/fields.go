package logger

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldPhase      = "phase"
	FieldType       = "type"
	FieldCapability = "capability"
	FieldLifetime   = "lifetime"
	FieldPolicy     = "policy"
	FieldPath       = "path"
	FieldSetup      = "setup"
	FieldCount      = "count"
	FieldError      = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("bindings applied", logger.Fields(logger.FieldCount, 4))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(phase string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldPhase: phase,
		FieldError: err.Error(),
	}
}
