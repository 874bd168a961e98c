// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	db     *mock.Db
	server *httptest.Server

	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string
	accessToken    string

	// saved holds response fields stored by earlier steps, substituted into
	// later requests as ${name}.
	saved map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{
			db:             db,
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
		}
		tc.server = httptest.NewServer(newEngine(db))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAuthSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDatabaseSteps(ctx)
}

// registerAuthSteps registers user setup and login steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
}

// registerDatabaseSteps registers database assertion steps.
func registerDatabaseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the database should contain (\d+) rows in "([^"]*)"$`, theDatabaseShouldContainRowsIn)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp, body, err := tc.do("POST", "/api/v1/auth/register", []byte(payload))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to register user %s: status %d, body %s", email, resp.StatusCode, string(body))
	}
	return nil
}

func iAmLoggedInAsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp, body, err := tc.do("POST", "/api/v1/auth/login", []byte(payload))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to log in as %s: status %d, body %s", email, resp.StatusCode, string(body))
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &auth); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	tc.accessToken = auth.AccessToken
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.sendRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.sendRequest(method, endpoint, []byte(body.Content))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok := tc.lookupField(field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok := tc.lookupField(field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.replacePlaceholders(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, ok := tc.lookupField(field); !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, ok := tc.lookupField(field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(list) != expected {
		return fmt.Errorf("list '%s' expected %d items, got %d. Body: %s", field, expected, len(list), string(tc.responseBody))
	}
	return nil
}

func theDatabaseShouldContainRowsIn(ctx context.Context, expected int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	count, err := tc.db.Count(table)
	if err != nil {
		return fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("table %s expected %d rows, got %d", table, expected, count)
	}
	return nil
}

// Helpers

// sendRequest substitutes saved placeholders, performs the request and
// records the response.
func (tc *TestContext) sendRequest(method, endpoint string, payload []byte) error {
	endpoint = tc.replacePlaceholders(endpoint)
	if payload != nil {
		payload = []byte(tc.replacePlaceholders(string(payload)))
	}

	resp, body, err := tc.do(method, endpoint, payload)
	if err != nil {
		return err
	}
	tc.response = resp
	tc.responseBody = body
	return nil
}

func (tc *TestContext) do(method, endpoint string, payload []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, body, nil
}

// replacePlaceholders substitutes ${name} references with values stored by
// earlier steps.
func (tc *TestContext) replacePlaceholders(content string) string {
	for name, value := range tc.saved {
		content = strings.ReplaceAll(content, "${"+name+"}", value)
	}
	return content
}

// lookupField resolves a dot-separated path in the response JSON. Numeric
// segments index into arrays.
func (tc *TestContext) lookupField(path string) (any, bool) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, false
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}
