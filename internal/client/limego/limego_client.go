package limego

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/friber/move-to-go/internal/client"
	"github.com/friber/move-to-go/internal/models"
)

const DefaultBaseURL = "https://api.lime-go.com/v1"

type Client struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

func NewClient(baseUrl, token string) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}
	return &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ client.PayloadSender = (*Client)(nil)

// Send posts one serialized entity to the import endpoint of its type.
func (c *Client) Send(ctx context.Context, payload *models.SchemaPayload) (*client.Receipt, error) {
	if payload == nil {
		return nil, errors.New("send: nil payload")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode payload")
	}

	endpoint := c.baseUrl + "/import/" + url.PathEscape(payload.TypeName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request (lime go)")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "send %s (lime go)", payload.TypeName)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body (lime go)")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}

	var created importResponse
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &created); err != nil {
			return nil, errors.Wrap(err, "parse response (lime go)")
		}
	}
	if created.TypeName == "" {
		created.TypeName = payload.TypeName
	}

	return &client.Receipt{RemoteID: created.ID, TypeName: created.TypeName}, nil
}
