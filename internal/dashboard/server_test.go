package dashboard

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sahil8669/airaware/internal/auth"
	"github.com/sahil8669/airaware/internal/config"
	"github.com/sahil8669/airaware/internal/db"
	"github.com/sahil8669/airaware/internal/models"
	"github.com/sahil8669/airaware/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	t.Cleanup(func() { db.Close(gdb) })
	return gdb
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedReadings stores Delhi readings in January and February and one Mumbai
// reading in January of another year.
func seedReadings(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	readings := []models.AirQualityReading{
		{City: "Delhi", FromDate: day(2024, time.January, 5), PM25: 100, PM10: 50},
		{City: "Delhi", FromDate: day(2024, time.February, 10), PM25: 200, PM10: 150},
		{City: "Mumbai", FromDate: day(2023, time.January, 20), PM25: 40, PM10: 30},
	}
	require.NoError(t, gdb.Create(&readings).Error)
}

type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

// newTestServer serves the dashboard over a real listener. The client keeps
// cookies and does not follow redirects.
func newTestServer(t *testing.T, gdb *gorm.DB) *testClient {
	t.Helper()
	return newTestServerOpts(t, StartOpts{
		DB:        gdb,
		Sessions:  session.NewStore(session.StoreOpts{}),
		ChatLimit: 50,
	})
}

func newTestServerOpts(t *testing.T, opts StartOpts) *testClient {
	t.Helper()
	router, err := NewRouter(opts)
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{
		t:    t,
		base: srv.URL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (tc *testClient) do(req *http.Request) (*http.Response, string) {
	tc.t.Helper()
	resp, err := tc.client.Do(req)
	require.NoError(tc.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(tc.t, err)
	return resp, string(body)
}

func (tc *testClient) get(path string) (*http.Response, string) {
	tc.t.Helper()
	req, err := http.NewRequest(http.MethodGet, tc.base+path, nil)
	require.NoError(tc.t, err)
	return tc.do(req)
}

func (tc *testClient) post(path string, form url.Values) (*http.Response, string) {
	tc.t.Helper()
	req, err := http.NewRequest(http.MethodPost, tc.base+path, strings.NewReader(form.Encode()))
	require.NoError(tc.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(req)
}

func (tc *testClient) login(username, password string) *http.Response {
	tc.t.Helper()
	resp, _ := tc.post("/", url.Values{"username": {username}, "password": {password}})
	return resp
}

func createUser(t *testing.T, gdb *gorm.DB, username, password string) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.User{Username: username, Password: password}).Error)
}

func TestNewRouter_NilDB(t *testing.T) {
	_, err := NewRouter(StartOpts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is required")
}

func TestStart_NilDB(t *testing.T) {
	err := Start(context.Background(), StartOpts{DB: nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is required")
}

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"assets/style.css", "assets/chart.js"} {
		data, err := assetsFS.ReadFile(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := templatesFS.ReadFile("templates/layout.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "AirAware")

	_, err = parseTemplates()
	require.NoError(t, err)
}

func TestStaticAssets(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, _ := tc.get("/static/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRoute_404(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, _ := tc.get("/no-such-page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoginForm(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, body := tc.get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="password"`)
}

func TestLogin_Plaintext(t *testing.T) {
	gdb := openTestDB(t)
	createUser(t, gdb, "alice", "secret")
	tc := newTestServer(t, gdb)

	resp := tc.login("alice", "secret")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp, body := tc.get("/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Logout (alice)")
}

func TestLogin_Bcrypt(t *testing.T) {
	gdb := openTestDB(t)
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	createUser(t, gdb, "alice", hash)
	tc := newTestServer(t, gdb)

	resp := tc.login("alice", "secret")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestLogin_Rejected(t *testing.T) {
	gdb := openTestDB(t)
	createUser(t, gdb, "alice", "secret")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown user", "bob", "secret"},
		{"wrong case", "Alice", "secret"},
		{"empty password", "alice", ""},
		{"empty username", "", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestServer(t, gdb)
			resp, body := tc.post("/", url.Values{"username": {tt.username}, "password": {tt.password}})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Contains(t, body, msgInvalidLogin)

			resp, _ = tc.get("/dashboard")
			assert.Equal(t, http.StatusFound, resp.StatusCode)
		})
	}
}

func TestDashboard_RequiresLogin(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, _ := tc.get("/dashboard")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestDashboard_CityAverages(t *testing.T) {
	gdb := openTestDB(t)
	createUser(t, gdb, "alice", "secret")
	seedReadings(t, gdb)
	tc := newTestServer(t, gdb)
	tc.login("alice", "secret")

	resp, body := tc.get("/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Total Cities: <strong>2</strong>")
	assert.Equal(t, 2, strings.Count(body, "<tr><td>"))
	assert.Contains(t, body, "<tr><td>Delhi</td><td>150.00</td><td>100.00</td></tr>")
	assert.Contains(t, body, "<tr><td>Mumbai</td><td>40.00</td><td>30.00</td></tr>")
	assert.Less(t, strings.Index(body, "Delhi"), strings.Index(body, "Mumbai"))
}

func TestDashboard_Empty(t *testing.T) {
	gdb := openTestDB(t)
	createUser(t, gdb, "alice", "secret")
	tc := newTestServer(t, gdb)
	tc.login("alice", "secret")

	_, body := tc.get("/dashboard")
	assert.Contains(t, body, "Total Cities: <strong>0</strong>")
	assert.Contains(t, body, "No readings stored yet.")
}

func TestMonthlyData(t *testing.T) {
	gdb := openTestDB(t)
	seedReadings(t, gdb)
	tc := newTestServer(t, gdb)

	resp, body := tc.get("/monthly-data")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.Empty(t, resp.Header.Get("Set-Cookie"))

	var got []MonthlyAverage
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, []MonthlyAverage{
		{Month: 1, PM25: 70, PM10: 40},
		{Month: 2, PM25: 200, PM10: 150},
	}, got)
}

func TestMonthlyData_Empty(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, body := tc.get("/monthly-data")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", body)
}

func TestAbout_ListsCategories(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, body := tc.get("/about")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, label := range []string{"Good", "Satisfactory", "Moderate", "Poor", "Very Poor", "Severe"} {
		assert.Contains(t, body, label)
	}
}

func TestPrediction(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	tests := []struct {
		name  string
		form  url.Values
		aqi   string
		label string
	}{
		{"weighted", url.Values{"pm25": {"100"}, "pm10": {"50"}}, "80.00", "Satisfactory"},
		{"empty fields", url.Values{"pm25": {""}, "pm10": {""}}, "0.00", "Good"},
		{"missing fields", url.Values{}, "0.00", "Good"},
		{"garbage", url.Values{"pm25": {"abc"}, "pm10": {"NaN"}}, "0.00", "Good"},
		{"severe", url.Values{"pm25": {"500"}, "pm10": {"500"}}, "500.00", "Severe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := tc.post("/prediction", tt.form)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, `<strong class="aqi">`+tt.aqi+`</strong>`)
			assert.Contains(t, body, `<strong class="status">`+tt.label+`</strong>`)
		})
	}
}

func TestPredictionForm(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, body := tc.get("/prediction")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, `class="aqi"`)
}

func TestHealth(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, body := tc.post("/health", url.Values{"aqi": {"250"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<strong class="level">Poor</strong>`)
	assert.Contains(t, body, "AQI 250")
}

func TestHealth_BadInput(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	for _, form := range []url.Values{{}, {"aqi": {""}}, {"aqi": {"abc"}}, {"aqi": {"12.5"}}} {
		resp, body := tc.post("/health", form)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, form.Encode())
		assert.Contains(t, body, `class="error"`)
		assert.NotContains(t, body, `class="level"`)
	}
}

func TestFeedback(t *testing.T) {
	gdb := openTestDB(t)
	tc := newTestServer(t, gdb)

	resp, body := tc.post("/feedback", url.Values{"name": {"Asha"}, "message": {"Great dashboard"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, msgFeedbackSaved)

	var stored []models.Feedback
	require.NoError(t, gdb.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "Asha", stored[0].Name)
	assert.Equal(t, "Great dashboard", stored[0].Message)
}

func TestFeedback_MissingField(t *testing.T) {
	gdb := openTestDB(t)
	tc := newTestServer(t, gdb)

	resp, body := tc.post("/feedback", url.Values{"name": {"Asha"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotContains(t, body, msgFeedbackSaved)

	var n int64
	require.NoError(t, gdb.Model(&models.Feedback{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestChatbot_Transcript(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, body := tc.get("/chatbot")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, strings.Count(body, `<li class="user">`))

	tc.post("/chatbot", url.Values{"question": {"hello"}})
	resp, body = tc.post("/chatbot", url.Values{"question": {"what is aqi"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 2, strings.Count(body, `<li class="user">`))
	assert.Equal(t, 2, strings.Count(body, `<li class="bot">`))

	order := []string{
		`<li class="user">hello</li>`,
		"How can I help you with air quality",
		`<li class="user">what is aqi</li>`,
		"Higher AQI",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(body, s)
		require.Greater(t, i, last, s)
		last = i
	}

	// The transcript survives a plain page load.
	_, body = tc.get("/chatbot")
	assert.Equal(t, 2, strings.Count(body, `<li class="user">`))
}

func TestChatbot_MissingQuestion(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, _ := tc.post("/chatbot", url.Values{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatbot_SeparateClients(t *testing.T) {
	gdb := openTestDB(t)
	router, err := NewRouter(StartOpts{DB: gdb})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	jarA, _ := cookiejar.New(nil)
	a := &testClient{t: t, base: srv.URL, client: &http.Client{Jar: jarA}}
	jarB, _ := cookiejar.New(nil)
	b := &testClient{t: t, base: srv.URL, client: &http.Client{Jar: jarB}}

	a.post("/chatbot", url.Values{"question": {"mask"}})
	_, body := b.get("/chatbot")
	assert.Zero(t, strings.Count(body, `<li class="user">`))
}

func TestChangeLang(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	req, err := http.NewRequest(http.MethodGet, tc.base+"/lang/hi", nil)
	require.NoError(t, err)
	req.Header.Set("Referer", "/about")
	resp, _ := tc.do(req)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/about", resp.Header.Get("Location"))

	_, body := tc.get("/about")
	assert.Contains(t, body, "परिचय")
	assert.Contains(t, body, `<html lang="hi">`)
}

func TestChangeLang_UnknownFallsBackToEnglish(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	resp, _ := tc.get("/lang/fr")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	_, body := tc.get("/about")
	assert.Contains(t, body, `<html lang="fr">`)
	assert.Contains(t, body, ">About<")
}

func TestLogout(t *testing.T) {
	gdb := openTestDB(t)
	createUser(t, gdb, "alice", "secret")
	tc := newTestServer(t, gdb)
	tc.login("alice", "secret")
	tc.post("/chatbot", url.Values{"question": {"hi"}})

	resp, _ := tc.get("/logout")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, _ = tc.get("/dashboard")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	_, body := tc.get("/chatbot")
	assert.Zero(t, strings.Count(body, `<li class="user">`))
}

func TestDownloadPage(t *testing.T) {
	gdb := openTestDB(t)
	seedReadings(t, gdb)
	tc := newTestServer(t, gdb)

	resp, body := tc.get("/download")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="Delhi">Delhi</option>`)
	assert.Contains(t, body, `<option value="Mumbai">Mumbai</option>`)
}

func readCSV(t *testing.T, body string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestDownloadAll(t *testing.T) {
	gdb := openTestDB(t)
	seedReadings(t, gdb)
	tc := newTestServer(t, gdb)

	resp, body := tc.get("/download-data")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Equal(t, `attachment; filename="all_air_data.csv"`, resp.Header.Get("Content-Disposition"))

	records := readCSV(t, body)
	require.Len(t, records, 4)
	assert.Contains(t, records[0], "city")
	assert.Contains(t, records[0], "pm25")
}

func TestDownloadByCity(t *testing.T) {
	gdb := openTestDB(t)
	seedReadings(t, gdb)
	tc := newTestServer(t, gdb)

	resp, body := tc.get("/download-by-city?city=Delhi")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Delhi_data.csv"`, resp.Header.Get("Content-Disposition"))

	records := readCSV(t, body)
	require.Len(t, records, 3)
	col := -1
	for i, name := range records[0] {
		if name == "city" {
			col = i
		}
	}
	require.NotEqual(t, -1, col)
	for _, rec := range records[1:] {
		assert.Equal(t, "Delhi", rec[col])
	}
}

func TestDownloadByCity_NoMatch(t *testing.T) {
	gdb := openTestDB(t)
	seedReadings(t, gdb)
	tc := newTestServer(t, gdb)

	resp, body := tc.get("/download-by-city?city=Atlantis")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Atlantis_data.csv"`, resp.Header.Get("Content-Disposition"))
	assert.Len(t, readCSV(t, body), 1)
}

func TestStoreFailure_Is500(t *testing.T) {
	gdb := openTestDB(t)
	tc := newTestServer(t, gdb)
	require.NoError(t, db.Close(gdb))

	resp, body := tc.get("/download-data")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Something went wrong")
	assert.NotContains(t, body, "closed")

	resp, _ = tc.get("/monthly-data")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSessions_AnonymousBrowsingStoresNothing(t *testing.T) {
	gdb := openTestDB(t)
	store := session.NewStore(session.StoreOpts{})
	router, err := NewRouter(StartOpts{DB: gdb, Sessions: store})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	// No cookie jar: every request arrives without a session cookie.
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	for i := 0; i < 250; i++ {
		for _, path := range []string{"/", "/about", "/download", "/chatbot", "/dashboard"} {
			resp, err := client.Get(srv.URL + path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Empty(t, resp.Header.Get("Set-Cookie"), path)
		}
	}
	resp, err := client.PostForm(srv.URL+"/", url.Values{"username": {"nobody"}, "password": {"x"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 0, store.Len())

	resp, err = client.PostForm(srv.URL+"/chatbot", url.Values{"question": {"hello"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("Set-Cookie"))
	assert.Equal(t, 1, store.Len())
}

func TestLogout_ClearsSecureCookie(t *testing.T) {
	gdb := openTestDB(t)
	createUser(t, gdb, "alice", "secret")
	router, err := NewRouter(StartOpts{DB: gdb, CookieSecure: true})
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	findCookie := func(resp *http.Response) *http.Cookie {
		for _, ck := range resp.Cookies() {
			if ck.Name == DefaultCookieName {
				return ck
			}
		}
		return nil
	}

	resp, err := client.PostForm(srv.URL+"/", url.Values{"username": {"alice"}, "password": {"secret"}})
	require.NoError(t, err)
	resp.Body.Close()
	issued := findCookie(resp)
	require.NotNil(t, issued)
	assert.True(t, issued.Secure)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/logout", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: issued.Value})
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	cleared := findCookie(resp)
	require.NotNil(t, cleared)
	assert.True(t, cleared.Secure)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestDownloadByCity_QuotesAwkwardCity(t *testing.T) {
	gdb := openTestDB(t)
	seedReadings(t, gdb)
	city := "Delhi, \"NCR\"\nEast"
	require.NoError(t, gdb.Create(&models.AirQualityReading{
		City: city, FromDate: day(2024, time.March, 1), PM25: 90, PM10: 60,
	}).Error)
	tc := newTestServer(t, gdb)

	resp, body := tc.get("/download-by-city?" + url.Values{"city": {city}}.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Delhi, _NCR__East_data.csv"`, resp.Header.Get("Content-Disposition"))

	records := readCSV(t, body)
	require.Len(t, records, 2)
	col := -1
	for i, name := range records[0] {
		if name == "city" {
			col = i
		}
	}
	require.NotEqual(t, -1, col)
	assert.Equal(t, city, records[1][col])
	assert.Len(t, records[1], len(records[0]))
}

func TestChangeLang_IgnoresForeignReferer(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	tests := []struct {
		referer string
		want    string
	}{
		{"https://evil.example/phish", "/dashboard"},
		{"//evil.example/phish", "/dashboard"},
		{"javascript:alert(1)", "/dashboard"},
		{"about", "/dashboard"},
		{tc.base + "/about?tab=1", "/about?tab=1"},
		{"/download", "/download"},
	}
	for _, tt := range tests {
		req, err := http.NewRequest(http.MethodGet, tc.base+"/lang/hi", nil)
		require.NoError(t, err)
		req.Header.Set("Referer", tt.referer)
		resp, _ := tc.do(req)
		assert.Equal(t, http.StatusFound, resp.StatusCode, tt.referer)
		assert.Equal(t, tt.want, resp.Header.Get("Location"), tt.referer)
	}
}

func TestLayout_LanguageSwitcher(t *testing.T) {
	tc := newTestServer(t, openTestDB(t))

	_, body := tc.get("/about")
	assert.Contains(t, body, `<a href="/lang/en">EN</a> | <a href="/lang/hi">हिं</a>`)
}
