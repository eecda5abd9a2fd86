package integration

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/player-manager/internal/domain"
)

var (
	ruth  = domain.Player{Name: "Babe Ruth", City: "Baltimore", Height: 74, Weight: 215, Throws: domain.HandLeft, Bats: domain.HandLeft}
	mays  = domain.Player{Name: "Willie Mays", City: "Westfield", Height: 70, Weight: 170, Throws: domain.HandRight, Bats: domain.HandRight}
	aaron = domain.Player{Name: "Hank Aaron", City: "Mobile", Height: 72, Weight: 180, Throws: domain.HandRight, Bats: domain.HandRight}
)

func playerForm(p domain.Player) url.Values {
	f := domain.FormFromPlayer(p)
	return url.Values{
		"name":   {f.Name},
		"city":   {f.City},
		"height": {f.Height},
		"weight": {f.Weight},
		"throws": {f.Throws},
		"bats":   {f.Bats},
	}
}

// TestE2E_CompleteWorkflow проходит весь сценарий работы с формой
func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnvironment(t, ruth, mays)
	defer env.Cleanup(t)

	env.WaitForHealthCheck(t)
	browser := env.NewBrowser(t)

	t.Run("Initial Load Selects First Player", func(t *testing.T) {
		body := env.GetPage(t, browser)
		assert.Contains(t, body, `<option value="Babe Ruth" selected>Babe Ruth</option>`)
		assert.Contains(t, body, `value="Baltimore"`)
	})

	t.Run("Select Player", func(t *testing.T) {
		body := env.Submit(t, browser, "/select", url.Values{"player_select": {"Willie Mays"}})
		assert.Contains(t, body, `<option value="Willie Mays" selected>Willie Mays</option>`)
		assert.Contains(t, body, `value="Westfield"`)
	})

	t.Run("Update Player", func(t *testing.T) {
		values := playerForm(mays)
		values.Set("weight", "175")
		body := env.Submit(t, browser, "/players/update", values)

		assert.Contains(t, body, "Player Willie Mays updated.")
		assert.Contains(t, body, `value="175"`)
		assert.Equal(t, 175, env.PlayersAPI.Players()[1].Weight)
	})

	t.Run("Create Player", func(t *testing.T) {
		body := env.Submit(t, browser, "/players/new", nil)
		require.Contains(t, body, "Go Back")

		body = env.Submit(t, browser, "/players/create", playerForm(aaron))
		assert.Contains(t, body, "Player Hank Aaron created.")
		assert.Contains(t, body, `<option value="Hank Aaron" selected>Hank Aaron</option>`)
		assert.Len(t, env.PlayersAPI.Players(), 3)
	})

	t.Run("Delete Player", func(t *testing.T) {
		body := env.Submit(t, browser, "/players/delete", nil)
		assert.Contains(t, body, "Player Hank Aaron deleted.")
		assert.Contains(t, body, `<option value="Babe Ruth" selected>Babe Ruth</option>`)
		assert.NotContains(t, body, "Hank Aaron</option>")
	})

	t.Run("Upstream Calls", func(t *testing.T) {
		var methods []string
		for _, r := range env.PlayersAPI.Requests() {
			methods = append(methods, r.Method+" "+r.Path)
			assert.Equal(t, "application/json", r.ContentType)
		}
		assert.Equal(t, []string{
			"GET /players",
			"PUT /players/Willie%20Mays",
			"GET /players",
			"POST /players",
			"GET /players",
			"DELETE /players/Hank%20Aaron",
			"GET /players",
		}, methods)
	})
}

// TestE2E_SeparateVisitors проверяет, что состояние формы у каждого посетителя свое
func TestE2E_SeparateVisitors(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnvironment(t, ruth, mays)
	defer env.Cleanup(t)

	env.WaitForHealthCheck(t)
	alice := env.NewBrowser(t)
	bob := env.NewBrowser(t)

	env.GetPage(t, alice)
	env.GetPage(t, bob)

	env.Submit(t, alice, "/players/new", nil)
	body := env.GetPage(t, bob)
	assert.NotContains(t, body, "Go Back")
	assert.Contains(t, body, "Add Player")

	body = env.Submit(t, bob, "/select", url.Values{"player_select": {"Willie Mays"}})
	assert.Contains(t, body, `<option value="Willie Mays" selected>Willie Mays</option>`)

	body = env.GetPage(t, alice)
	assert.Contains(t, body, "Go Back")
}

// TestE2E_StaleSelection проверяет поведение при удалении игрока другим посетителем
func TestE2E_StaleSelection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnvironment(t, ruth, mays)
	defer env.Cleanup(t)

	env.WaitForHealthCheck(t)
	alice := env.NewBrowser(t)
	bob := env.NewBrowser(t)

	env.GetPage(t, alice)
	env.Submit(t, alice, "/select", url.Values{"player_select": {"Willie Mays"}})

	env.GetPage(t, bob)
	env.Submit(t, bob, "/select", url.Values{"player_select": {"Willie Mays"}})
	env.Submit(t, bob, "/players/delete", nil)

	body := env.Submit(t, alice, "/players/update", playerForm(mays))
	assert.Contains(t, body, "That player no longer exists. The list has been reloaded.")
	assert.NotContains(t, body, "Willie Mays</option>")
}

// TestE2E_Health проверяет эндпоинт мониторинга
func TestE2E_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	env := SetupTestEnvironment(t)
	defer env.Cleanup(t)

	env.WaitForHealthCheck(t)

	resp, err := http.Get(env.BaseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
}
