package updater

import (
	"context"
	"errors"
	"io"

	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/logger"
)

// download streams the asset into the working directory, reporting progress
// after every received chunk. The progress counter is clamped to the expected
// size; file writes are not. A failed download leaves the partial file in
// place so the next run sees a size mismatch and overwrites it.
func (r *runner) download(ctx context.Context, descriptor update.Descriptor, fileName string) error {
	logger.InfoKV(ctx, "Downloading latest release", "file", fileName, "size", descriptor.AssetSize)

	body, err := r.client.Fetch(ctx, descriptor.AssetURL)
	if err != nil {
		return err
	}

	defer func() {
		_ = body.Close()
	}()

	out, err := r.dir.Create(fileName)
	if err != nil {
		return update.NewError(update.KindFileOperation, err, "failed to create file %s", fileName)
	}

	defer func() {
		_ = out.Close()
	}()

	var bytesDone uint64

	buffer := make([]byte, downloadChunkSize)

	for {
		n, readErr := body.Read(buffer)
		if n > 0 {
			if _, writeErr := out.Write(buffer[:n]); writeErr != nil {
				return update.NewError(update.KindFileOperation, writeErr, "error writing to file %s", fileName)
			}

			bytesDone += uint64(n)
			if bytesDone > descriptor.AssetSize {
				bytesDone = descriptor.AssetSize
			}

			r.sink.Update(update.Progress{BytesDone: bytesDone, BytesTotal: descriptor.AssetSize})
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return update.NewError(update.KindAPIRequest, readErr, "error downloading file %s", fileName)
		}
	}

	r.sink.Done()

	logger.InfoKV(ctx, "Downloaded successfully", "file", fileName)

	return nil
}
