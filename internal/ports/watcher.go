package ports

// Watcher monitors one input file and fires onChange when its contents may
// have changed. Editors often write a file several times per save, so the
// adapter debounces events. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring filePath. onChange is called with the absolute
	// path of the file. The callback may be invoked from any goroutine.
	// Returns an error if the file's directory doesn't exist or permissions
	// are insufficient.
	Watch(filePath string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
