// Package logtail reads the tail of flip's JSON log file.
//
// # Reading Log Files
//
// Read uses a ring buffer to extract the last maxLines from a file in one
// pass with O(maxLines) memory, returning lines in chronological order.
//
//	lines, err := logtail.Read(cfg.LogPath(), 50)
//	if err != nil {
//		return err
//	}
//
// # Parsing Records
//
// flip logs through log/slog's JSON handler, so every line is an object
// with time, level and msg plus the record's attributes. Parse splits a
// line into an Entry with the attributes sorted by key; lines that are not
// JSON are kept verbatim in Entry.Raw.
//
//	for _, e := range logtail.ParseLines(lines) {
//		if e.AtLeast("WARN") {
//			fmt.Println(e.Time.Format(time.TimeOnly), e.Message)
//		}
//	}
package logtail
