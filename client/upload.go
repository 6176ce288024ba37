package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/hammem/monarchmoney/client/gql"
	"github.com/hammem/monarchmoney/schema"
)

// UploadAccountBalanceHistory uploads a balance history CSV for one account
// through the REST upload endpoint. The CSV columns follow the service's
// import format (date, amount).
func (c *Client) UploadAccountBalanceHistory(ctx context.Context, accountID string, csv io.Reader) error {
	const operation = "UploadAccountBalanceHistory"
	if !c.auth.Session().Valid() {
		return schema.ErrLoginRequired
	}
	if accountID == "" || csv == nil {
		return schema.NewOperationError(operation, "account id and csv content are required")
	}

	const filename = "upload.csv"
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, filename))
	header.Set("Content-Type", "text/csv")
	part, err := form.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err = io.Copy(part, csv); err != nil {
		return fmt.Errorf("failed to buffer csv content: %w", err)
	}
	mapping, err := json.Marshal(map[string]string{filename: accountID})
	if err != nil {
		return fmt.Errorf("failed to encode account mapping: %w", err)
	}
	if err = form.WriteField("account_files_mapping", string(mapping)); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if err = form.Close(); err != nil {
		return fmt.Errorf("failed to finalize upload form: %w", err)
	}

	status, respBody, err := c.endpoint.Upload(ctx, gql.UploadBalanceHistoryPath, form.FormDataContentType(), &body)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d", schema.ErrSessionExpired, status)
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		return &schema.OperationError{Operation: operation, Message: fmt.Sprintf("HTTP %d: %s", status, respBody)}
	}
	return nil
}
