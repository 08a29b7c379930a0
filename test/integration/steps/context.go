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
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Seed data
	users      map[string]*entity.User
	categories map[string]*entity.Category

	// Services for seeding and token generation
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
	expenseRepo     adapter.ExpenseRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService

	cfg *config.Config
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

func testModels() []any {
	return []any{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
		&model.MonthlyLimitModel{},
		&model.EventModel{},
		&model.EmailQueueModel{},
	}
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
		database := mock.NewDb(testModels())
		if err := database.Reset(); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = "integration-test-secret"

		injector, err := dependency.NewInjector(cfg, database.DbConn, redisClient)
		if err != nil {
			return ctx, err
		}

		engine := injector.Router.Setup("test")

		tokenRepo := persistence.NewTokenRepository(database.DbConn)

		tc := &TestContext{
			server:          httptest.NewServer(engine),
			requestHeaders:  make(map[string]string),
			users:           make(map[string]*entity.User),
			categories:      make(map[string]*entity.Category),
			userRepo:        persistence.NewUserRepository(database.DbConn),
			categoryRepo:    persistence.NewCategoryRepository(database.DbConn),
			expenseRepo:     persistence.NewExpenseRepository(database.DbConn),
			passwordService: adapters.NewPasswordService(),
			tokenService:    adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo),
			cfg:             cfg,
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSeedSteps registers data seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, aUserExists)
	ctx.Step(`^an admin user exists with email "([^"]*)" and password "([^"]*)"$`, anAdminUserExists)
	ctx.Step(`^a category named "([^"]*)" exists$`, aCategoryExists)
	ctx.Step(`^the following expenses exist for "([^"]*)":$`, theFollowingExpensesExist)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
}

// Seed step implementations

func seedUser(tc *TestContext, email, password string, role entity.Role) error {
	hash, err := tc.passwordService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, strings.Split(email, "@")[0], hash)
	user.Role = role

	if err := tc.userRepo.Create(context.Background(), user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	tc.users[email] = user
	return nil
}

func aUserExists(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return seedUser(tc, email, password, entity.RoleViewer)
}

func anAdminUserExists(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return seedUser(tc, email, password, entity.RoleAdmin)
}

func aCategoryExists(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	category := entity.NewCategory(name, "")
	if err := tc.categoryRepo.Create(context.Background(), category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	tc.categories[name] = category
	return nil
}

func theFollowingExpensesExist(ctx context.Context, email string, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	user, ok := tc.users[email]
	if !ok {
		return fmt.Errorf("user %q has not been seeded", email)
	}

	if len(table.Rows) < 2 {
		return fmt.Errorf("expense table needs a header row and at least one data row")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}

	for _, row := range table.Rows[1:] {
		get := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row.Cells) {
				return ""
			}
			return row.Cells[idx].Value
		}

		date, err := time.Parse("2006-01-02", get("date"))
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", get("date"), err)
		}

		amount, err := decimal.NewFromString(get("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", get("amount"), err)
		}

		category, ok := tc.categories[get("category")]
		if !ok {
			return fmt.Errorf("category %q has not been seeded", get("category"))
		}

		expense := entity.NewExpense(user.ID, category.ID, date, get("description"), amount, nil)
		if err := tc.expenseRepo.Create(context.Background(), expense); err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}
	}

	return nil
}

// API step implementations

func iAmAuthenticatedAs(ctx context.Context, email string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	user, ok := tc.users[email]
	if !ok {
		return ctx, fmt.Errorf("user %q has not been seeded", email)
	}

	pair, err := tc.tokenService.GenerateTokenPair(context.Background(), user.ID, user.Email)
	if err != nil {
		return ctx, fmt.Errorf("failed to generate token pair: %w", err)
	}

	tc.accessToken = pair.AccessToken
	return SetTestContext(ctx, tc), nil
}

// substitutePlaceholders replaces {{category:Name}} markers with the seeded
// category's ID so scenarios can reference generated UUIDs.
func (tc *TestContext) substitutePlaceholders(s string) string {
	for name, category := range tc.categories {
		s = strings.ReplaceAll(s, "{{category:"+name+"}}", category.ID.String())
	}
	return s
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	url := tc.server.URL + tc.substitutePlaceholders(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	content := tc.substitutePlaceholders(body.Content)

	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

// Response step implementations

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
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response contains %q. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

// lookupField walks a dotted path ("pagination.total_pages") through the
// decoded response body.
func (tc *TestContext) lookupField(path string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	var current any = data
	for _, part := range strings.Split(path, ".") {
		if index, err := strconv.Atoi(part); err == nil {
			list, ok := current.([]any)
			if !ok {
				return nil, fmt.Errorf("field %q is not a list in path %q", part, path)
			}
			if index < 0 || index >= len(list) {
				return nil, fmt.Errorf("index %d out of range in path %q", index, path)
			}
			current = list[index]
			continue
		}

		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in path %q", part, path)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response", path)
		}
	}

	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(tc.responseBody))
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.lookupField(field)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list. Body: %s", field, string(tc.responseBody))
	}
	if len(list) != expected {
		return fmt.Errorf("field %q expected %d items, got %d. Body: %s", field, expected, len(list), string(tc.responseBody))
	}

	return nil
}
