// Package log is the structured logging surface used by the resume
// packages.
//
// Library code depends only on the [Logger] interface and defaults to
// [NoopLogger], so the scanner and pool stay silent unless a caller opts in.
// The command wires a [ZerologAdapter] writing to stderr:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	r := resume.New(seed.SectionCount, resume.WithLogger(logger))
//
// Fields are built with the helpers in this package:
//
//	logger.Info("configuration loaded",
//		log.Size("size", len(raw)),
//		log.Digest("xxhash", xxhash.Sum64(raw)),
//	)
package log
