// File: pkg/combine/worker.go
package combine

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// processFiles writes every readable text candidate to output, in order.
// Per-file failures are counted as skipped; failing to create or write the
// output aborts the run and leaves whatever was written in place.
func (c *Combiner) processFiles(files []string, output string, events chan<- Event) (Result, error) {
	var result Result

	outFile, err := c.fs.Create(output)
	if err != nil {
		c.logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return result, fmt.Errorf("Error writing output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			c.logger.Error("Failed to close output file", zap.String("file", output), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for i, file := range files {
		name := filepath.Base(file)
		emit(events, Event{Kind: EventStatus, Text: "Processing: " + name})
		emit(events, Event{Kind: EventProgress, Value: i + 1})

		content, err := ReadTextFile(c.fs, file, c.logger)
		if err != nil {
			result.Skipped++
			if errors.Is(err, ErrBinary) {
				c.logger.Debug("Skipping likely binary file", zap.String("filePath", file))
				emit(events, Event{Kind: EventStatus, Text: "Skipping likely binary file: " + name})
			} else {
				c.logger.Warn("Skipping unreadable file", zap.String("filePath", file), zap.Error(err))
				emit(events, Event{Kind: EventStatus, Text: fmt.Sprintf("Skipping unreadable file %s: %v", name, err)})
			}
			continue
		}

		if err := writeEntry(writer, file, content); err != nil {
			c.logger.Error("Failed to write content to combined file",
				zap.String("file", output),
				zap.String("contentPath", file),
				zap.Error(err))
			return result, fmt.Errorf("Error writing output file: %w", err)
		}
		result.Processed++
	}

	if err := writer.Flush(); err != nil {
		c.logger.Error("Failed to flush output file", zap.String("file", output), zap.Error(err))
		return result, fmt.Errorf("Error writing output file: %w", err)
	}
	return result, nil
}

func writeEntry(writer *bufio.Writer, file, content string) error {
	for _, part := range []string{fileHeader(file), content, fileSeparator} {
		if _, err := writer.WriteString(part); err != nil {
			return err
		}
	}
	return nil
}

// emit sends ev unless no listener was supplied. It blocks while the buffer is full.
func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
