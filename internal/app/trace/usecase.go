package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gridworld/internal/app/ports"

	"github.com/klauspost/compress/zstd"
)

type UseCase struct {
	Repo ports.TraceRepository
}

type Request struct {
	Limit int
}

type Response struct {
	Records []ports.TraceRecord `json:"records"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	records, err := u.Repo.List(ctx, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Records: records}, nil
}

// Export streams the whole journal as zstd-compressed JSON lines, one
// record per line in sequence order.
func (u UseCase) Export(ctx context.Context, w io.Writer) error {
	records, err := u.Repo.List(ctx, 0)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			enc.Close()
			return fmt.Errorf("marshal trace %d: %w", rec.Seq, err)
		}
		if _, err := enc.Write(append(line, '\n')); err != nil {
			enc.Close()
			return err
		}
	}
	return enc.Close()
}
