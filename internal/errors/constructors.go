package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteGenError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteGenError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Build pipeline errors

func TemplateError(path string, cause error) *SiteGenError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template load failed").
		WithContext("path", path)
}

func RenderError(file string, cause error) *SiteGenError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page render failed").
		WithContext("file", file)
}

func FileSystemError(operation string, cause error) *SiteGenError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation)
}

func DiscoveryError(cause error) *SiteGenError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "documentation discovery failed")
}
