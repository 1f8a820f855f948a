// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/d13co/algorand.observer/crypto"
	"github.com/d13co/algorand.observer/daemon/algod/api/client/models"
	"github.com/d13co/algorand.observer/data/basics"
	"github.com/d13co/algorand.observer/data/transactions"
	"github.com/d13co/algorand.observer/protocol"
	"github.com/d13co/algorand.observer/serr"
)

const (
	authHeader          = "X-Algo-API-Token"
	healthCheckEndpoint = "/health"
	maxRawResponseBytes = 50e6
)

// ErrCompilationError is returned when the node refuses to compile or
// disassemble a program.
var ErrCompilationError = errors.New("compilation error")

// rawRequestPaths is a set of paths where the body should not be urlencoded
var rawRequestPaths = map[string]bool{
	"/v2/transactions":     true,
	"/v2/teal/compile":     true,
	"/v2/teal/disassemble": true,
}

// unauthorizedRequestError is generated when we receive 401 error from the server. This error includes the inner error
// as well as the likely parameters that caused the issue.
type unauthorizedRequestError struct {
	errorString string
	apiToken    string
	url         string
}

// Error format an error string for the unauthorizedRequestError error.
func (e unauthorizedRequestError) Error() string {
	return fmt.Sprintf("Unauthorized request to `%s` when using token `%s` : %s", e.url, e.apiToken, e.errorString)
}

// HTTPError is generated when we receive an unhandled error from the server. This error contains the error string.
type HTTPError struct {
	StatusCode  int
	Status      string
	ErrorString string
	Data        map[string]any
}

// Error formats an error string.
func (e HTTPError) Error() string {
	return fmt.Sprintf("HTTP %s: %s", e.Status, e.ErrorString)
}

// RestClient manages the REST interface for a calling user.
type RestClient struct {
	serverURL  url.URL
	apiToken   string
	httpClient *http.Client
}

// MakeRestClient is the factory for constructing a RestClient for a given endpoint
func MakeRestClient(url url.URL, apiToken string) RestClient {
	return RestClient{
		serverURL:  url,
		apiToken:   apiToken,
		httpClient: &http.Client{},
	}
}

// filterASCII filter out the non-ascii printable characters out of the given input string.
// It's used as a security qualifier before adding network provided data into an error message.
// The function allows only characters in the range of [32..126], which excludes all the
// control character, new lines, deletion, etc. All the alpha numeric and punctuation characters
// are included in this range.
func filterASCII(unfilteredString string) (filteredString string) {
	for i, r := range unfilteredString {
		if int(r) >= 0x20 && int(r) <= 0x7e {
			filteredString += string(unfilteredString[i])
		}
	}
	return
}

// extractError checks if the response signifies an error (for now, StatusCode != 200 or StatusCode != 201).
// If so, it returns the error.
// Otherwise, it returns nil.
func extractError(resp *http.Response) error {
	if resp.StatusCode == 200 || resp.StatusCode == 201 {
		return nil
	}

	errorBuf, _ := io.ReadAll(resp.Body) // ignore returned error
	var errorJSON models.ErrorResponse
	decodeErr := json.Unmarshal(errorBuf, &errorJSON)

	var errorString string
	var data map[string]any
	if decodeErr == nil && errorJSON.Message != "" {
		errorString = errorJSON.Message
		if errorJSON.Data != nil {
			data = *errorJSON.Data
		}
	} else {
		errorString = string(errorBuf)
	}
	errorString = filterASCII(errorString)

	if resp.StatusCode == http.StatusUnauthorized {
		apiToken := resp.Request.Header.Get(authHeader)
		return unauthorizedRequestError{errorString, apiToken, resp.Request.URL.String()}
	}

	return HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, ErrorString: errorString, Data: data}
}

// stripTransaction gets a transaction of the form "tx-XXXXXXXX" and truncates the "tx-" part, if it starts with "tx-"
func stripTransaction(tx string) string {
	if strings.HasPrefix(tx, "tx-") {
		return strings.SplitAfter(tx, "-")[1]
	}
	return tx
}

// RawResponse is fulfilled by responses that should not be decoded as json
type RawResponse interface {
	SetBytes([]byte)
}

// Blob represents arbitrary blob of data satisfying RawResponse interface
type Blob []byte

// SetBytes fulfills the RawResponse interface on Blob
func (blob *Blob) SetBytes(b []byte) {
	*blob = b
}

type rawFormat struct {
	Format string `url:"format"`
}

// mergeRawQueries merges two raw queries, appending an "&" if both are non-empty
func mergeRawQueries(q1, q2 string) string {
	if q1 == "" || q2 == "" {
		return q1 + q2
	}
	return q1 + "&" + q2
}

// submitForm is a helper used for submitting (ex.) GETs and POSTs to the server
// if expectNoContent is true, then it is expected that the response received will have a content length of zero
func (client RestClient) submitForm(
	ctx context.Context, response interface{}, path string, params interface{}, body interface{},
	requestMethod string, encodeJSON bool, decodeJSON bool, expectNoContent bool) error {

	var err error
	queryURL := client.serverURL
	queryURL.Path = strings.TrimSuffix(queryURL.Path, "/") + path

	var bodyReader io.Reader
	var v url.Values

	if params != nil {
		v, err = query.Values(params)
		if err != nil {
			return err
		}
	}

	if requestMethod == http.MethodPost && rawRequestPaths[path] {
		reqBytes, ok := body.([]byte)
		if !ok {
			return fmt.Errorf("couldn't decode raw request as bytes")
		}
		bodyReader = bytes.NewBuffer(reqBytes)
	} else if encodeJSON {
		jsonValue, _ := json.Marshal(params)
		bodyReader = bytes.NewBuffer(jsonValue)
	}

	queryURL.RawQuery = mergeRawQueries(queryURL.RawQuery, v.Encode())

	req, err := http.NewRequestWithContext(ctx, requestMethod, queryURL.String(), bodyReader)
	if err != nil {
		return err
	}
	if rawRequestPaths[path] {
		req.Header.Set("Content-Type", "application/x-binary")
	}

	// If we add another endpoint that does not require auth, we should add a
	// requiresAuth argument to submitForm rather than checking here
	if path != healthCheckEndpoint {
		req.Header.Set(authHeader, client.apiToken)
	}

	httpClient := client.httpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}

	// Ensure response isn't too large
	resp.Body = http.MaxBytesReader(nil, resp.Body, maxRawResponseBytes)
	defer resp.Body.Close()

	err = extractError(resp)
	if err != nil {
		return err
	}

	if expectNoContent {
		if resp.ContentLength <= 0 {
			return nil
		}
		return fmt.Errorf("expected empty response but got response of %d bytes", resp.ContentLength)
	}

	if decodeJSON {
		dec := protocol.NewJSONDecoder(resp.Body)
		return dec.Decode(response)
	}

	// Response must implement RawResponse
	raw, ok := response.(RawResponse)
	if !ok {
		return fmt.Errorf("can only decode raw response into type implementing RawResponse")
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	raw.SetBytes(bodyBytes)
	return nil
}

// get performs a GET request to the specific path against the server
func (client RestClient) get(ctx context.Context, response interface{}, path string, request interface{}) error {
	return client.submitForm(ctx, response, path, request, nil, http.MethodGet, false /* encodeJSON */, true /* decodeJSON */, false)
}

// getRaw behaves identically to get but doesn't json decode the response, and
// the response must implement the RawResponse interface
func (client RestClient) getRaw(ctx context.Context, response RawResponse, path string, request interface{}) error {
	return client.submitForm(ctx, response, path, request, nil, http.MethodGet, false /* encodeJSON */, false /* decodeJSON */, false)
}

// post sends a POST request to the given path with the given request object.
// No query parameters will be sent if request is nil.
// response must be a pointer to an object as post writes the response there.
func (client RestClient) post(ctx context.Context, response interface{}, path string, params interface{}, body interface{}, expectNoContent bool) error {
	return client.submitForm(ctx, response, path, params, body, http.MethodPost, true /* encodeJSON */, true /* decodeJSON */, expectNoContent)
}

// HealthCheck does a health check on the potentially running node,
// returning an error if the API is down
func (client RestClient) HealthCheck(ctx context.Context) error {
	return client.submitForm(ctx, nil, healthCheckEndpoint, nil, nil, http.MethodGet, false, false, true)
}

// Status retrieves the NodeStatusResponse from the running node
// the NodeStatusResponse includes data like the consensus version and current round
func (client RestClient) Status(ctx context.Context) (response models.NodeStatusResponse, err error) {
	err = client.get(ctx, &response, "/v2/status", nil)
	return
}

// SuggestedParams gets the suggested transaction parameters
func (client RestClient) SuggestedParams(ctx context.Context) (response models.TransactionParametersResponse, err error) {
	err = client.get(ctx, &response, "/v2/transactions/params", nil)
	return
}

// SendRawTransactionGroup gets a SignedTxn group and broadcasts it to the
// network as a single submission. It returns the txid the node reports,
// which is the id of the first transaction.
func (client RestClient) SendRawTransactionGroup(ctx context.Context, txgroup []transactions.SignedTxn) (string, error) {
	var enc []byte
	for _, tx := range txgroup {
		enc = append(enc, protocol.Encode(&tx)...)
	}

	var response models.PostTransactionsResponse
	err := client.post(ctx, &response, "/v2/transactions", nil, enc, false)
	return response.TxID, err
}

// PendingTransactionInformation gets information about a recently issued
// transaction.  There are several cases when this might succeed:
//
// - transaction committed (ConfirmedRound > 0)
// - transaction still in the pool (ConfirmedRound = 0, PoolError = "")
// - transaction removed from pool due to error (ConfirmedRound = 0, PoolError != "")
//
// Or the transaction may have happened sufficiently long ago that the
// node no longer remembers it, and this will return an error.
func (client RestClient) PendingTransactionInformation(ctx context.Context, transactionID string) (record transactions.PendingRecord, err error) {
	transactionID = stripTransaction(transactionID)
	var blob Blob
	err = client.getRaw(ctx, &blob, fmt.Sprintf("/v2/transactions/pending/%s", transactionID), rawFormat{Format: "msgpack"})
	if err != nil {
		return
	}
	err = protocol.Decode(blob, &record)
	return
}

func compilationError(err error) error {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusBadRequest {
		return serr.Wrap(ErrCompilationError, httpErr.ErrorString, "status", httpErr.StatusCode)
	}
	return err
}

// Compile compiles the given program and returns the compiled program and
// its hash.
func (client RestClient) Compile(ctx context.Context, program []byte) (compiledProgram []byte, programHash crypto.Digest, err error) {
	var compileResponse models.CompileResponse

	err = client.submitForm(ctx, &compileResponse, "/v2/teal/compile", nil, program, http.MethodPost, false, true, false)
	if err != nil {
		return nil, crypto.Digest{}, compilationError(err)
	}
	compiledProgram, err = base64.StdEncoding.DecodeString(compileResponse.Result)
	if err != nil {
		return nil, crypto.Digest{}, err
	}
	var progAddr basics.Address
	progAddr, err = basics.UnmarshalChecksumAddress(compileResponse.Hash)
	if err != nil {
		return nil, crypto.Digest{}, err
	}
	programHash = crypto.Digest(progAddr)
	return
}

// Disassemble disassembles the given program bytes into TEAL source.
func (client RestClient) Disassemble(ctx context.Context, program []byte) (string, error) {
	var response models.DisassembleResponse
	err := client.submitForm(ctx, &response, "/v2/teal/disassemble", nil, program, http.MethodPost, false, true, false)
	if err != nil {
		return "", compilationError(err)
	}
	return response.Result, nil
}
