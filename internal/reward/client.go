package reward

import (
	"context"
	"fmt"

	pb "github.com/danielpatrickdp/metamorph/gen/reward"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// Client wraps the gRPC connection to an external reward service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.RewardServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the reward service at addr.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewRewardServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.RewardServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region score
// Score asks the remote service to reward this tick's prediction.
func (c *Client) Score(ctx context.Context, iteration uint64, input, prediction float64) (float64, error) {
	resp, err := c.client.Score(ctx, &pb.ScoreRequest{
		Iteration:  iteration,
		Input:      input,
		Prediction: prediction,
	})
	if err != nil {
		return 0, fmt.Errorf("score rpc: %w", err)
	}
	return resp.Reward, nil
}

// #endregion score
