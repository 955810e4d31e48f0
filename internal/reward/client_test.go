package reward

import (
	"context"
	"errors"
	"math"
	"testing"

	pb "github.com/danielpatrickdp/metamorph/gen/reward"
	"google.golang.org/grpc"
)

// #region fake-service

type fakeService struct {
	lastReq *pb.ScoreRequest
	reward  float64
	err     error
}

func (f *fakeService) Score(_ context.Context, in *pb.ScoreRequest, _ ...grpc.CallOption) (*pb.ScoreResponse, error) {
	f.lastReq = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ScoreResponse{Reward: f.reward}, nil
}

// #endregion fake-service

func TestLocalOracle(t *testing.T) {
	o := NewLocal()

	// A perfect prediction of the scaled input earns the full reward.
	r, err := o.Score(context.Background(), 0, 0.5, 1.0)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(r-1.0) > 1e-12 {
		t.Fatalf("perfect prediction: got %f, want 1", r)
	}

	// Far-off predictions are floored at -1.
	r, err = o.Score(context.Background(), 0, 0.5, 100)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r != -1 {
		t.Fatalf("floor: got %f, want -1", r)
	}
}

func TestClientScore(t *testing.T) {
	svc := &fakeService{reward: 0.75}
	c := NewClientWithService(svc)

	r, err := c.Score(context.Background(), 42, 0.59, -0.45)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r != 0.75 {
		t.Fatalf("reward: got %f, want 0.75", r)
	}
	if svc.lastReq.Iteration != 42 || svc.lastReq.Input != 0.59 || svc.lastReq.Prediction != -0.45 {
		t.Fatalf("request fields: %+v", svc.lastReq)
	}
}

func TestClientScoreError(t *testing.T) {
	svc := &fakeService{err: errors.New("deadline exceeded")}
	c := NewClientWithService(svc)

	if _, err := c.Score(context.Background(), 1, 0, 0); err == nil {
		t.Fatal("expected an error from the rpc")
	}
}

func TestCloseWithoutConn(t *testing.T) {
	c := NewClientWithService(&fakeService{})
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
