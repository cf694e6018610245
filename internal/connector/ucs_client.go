package connector

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// UCSClient is a thin gRPC client for the Unified Connector Service: a
// single external process that itself holds the real per-processor
// integrations, reached over one generic RPC rather than per-connector
// generated stubs. No .proto contract ships with this module, so the
// request/response wire shape is a google.protobuf.Struct (a concrete,
// already-generated proto.Message from google.golang.org/protobuf) built
// from the same JSON body Connector.BuildXRequest produces — UCS-routed
// dispatch reuses the HTTPRequest/HTTPResponse shape end to end, so no
// connector needs a second code path for UCS vs. direct HTTP.
type UCSClient struct {
	conn *grpc.ClientConn
}

// NewUCSClient dials the UCS endpoint. target is a dns:/// or static
// host:port address; credentials are supplied by the caller (insecure
// is only the local-dev default).
func NewUCSClient(target string, opts ...grpc.DialOption) (*UCSClient, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dialing UCS endpoint %s: %w", target, err)
	}
	return &UCSClient{conn: conn}, nil
}

func (c *UCSClient) Close() error { return c.conn.Close() }

// ucsFullMethod names the one UCS RPC every flow multiplexes through,
// qualified by connector name and flow so the UCS side can route
// without needing one generated method per processor.
func ucsFullMethod(connectorName string, flow Flow) string {
	return fmt.Sprintf("/ucs.v1.ConnectorService/%s_%s", connectorName, flow)
}

// Invoke marshals req (an HTTPRequest body already built by a Connector)
// into a google.protobuf.Struct, calls the UCS RPC for (connectorName,
// flow), and returns the response body as JSON bytes — the same shape
// HandleAuthorizeResponse/HandleGenericResponse already parse, so UCS
// dispatch is invisible to every Connector implementation.
func (c *UCSClient) Invoke(ctx context.Context, connectorName string, flow Flow, reqBody []byte) ([]byte, error) {
	var reqMap map[string]any
	if len(reqBody) > 0 {
		if err := json.Unmarshal(reqBody, &reqMap); err != nil {
			return nil, fmt.Errorf("UCS request body is not a JSON object: %w", err)
		}
	}
	reqStruct, err := structpb.NewStruct(reqMap)
	if err != nil {
		return nil, fmt.Errorf("encoding UCS request: %w", err)
	}

	respStruct := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, ucsFullMethod(connectorName, flow), reqStruct, respStruct); err != nil {
		return nil, fmt.Errorf("UCS call %s/%s: %w", connectorName, flow, err)
	}

	respBody, err := json.Marshal(respStruct.AsMap())
	if err != nil {
		return nil, fmt.Errorf("encoding UCS response: %w", err)
	}
	return respBody, nil
}
