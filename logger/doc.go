// Package logger renders the colored ERROR lines printed by cli-log.
//
// # Output
//
// Every line has the shape
//
//	[CHILD] [CHILD] [ERROR] message
//
// with one [CHILD] marker per nesting layer. Brackets use ANSI 256-color 240,
// the CHILD label 60 and the ERROR label 210. The ERROR marker is followed by
// a style reset, so the message itself is printed uncolored. Colors are
// always emitted; terminals without 256-color support show the raw escapes.
//
// # Nesting
//
// A parent tool chain exports GREATHELM_EMBEDDED_LAYERS to its children. Read
// it once at startup and pass the depth in:
//
//	depth := logger.ParseLayers(os.Getenv(logger.LayersEnv))
//	log := logger.New(logger.Config{Layers: depth})
//	log.Error("build failed")
//
// ParseLayers is lenient: a missing or non-numeric value is depth 0.
package logger
