package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/diluwara/Developer-Exam/internal/apiclient"
	"github.com/diluwara/Developer-Exam/internal/models"
)

// pageData is everything the index page template needs: the user list with
// its fetch state, plus the form's own state. The two are independent — a
// form error never clears the list and vice versa.
type pageData struct {
	Users     []models.User
	ListError string

	FormName       string
	FormEmail      string
	FormDepartment string
	FormError      string
}

// IndexPage renders the user list alongside the create form. The list is
// fetched from the API on every request; a fetch failure renders as error
// text instead of a broken page.
func IndexPage(client *apiclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := &pageData{}
		data.Users, data.ListError = fetchUsers(client)
		RenderTemplate(w, "users/index.html", data)
	}
}

// SubmitUser handles the create-user form. Validation runs in order — name,
// then email presence, then a minimal email shape check — and stops at the
// first failure without issuing an API request. On success the browser is
// redirected back to the index, which refreshes the list.
func SubmitUser(client *apiclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		name := r.FormValue("name")
		email := r.FormValue("email")
		department := r.FormValue("department")

		var formError string
		switch {
		case strings.TrimSpace(name) == "":
			formError = "Name is required"
		case strings.TrimSpace(email) == "":
			formError = "Email is required"
		case !strings.Contains(email, "@"):
			formError = "Please enter a valid email address"
		}

		if formError == "" {
			if _, err := client.CreateUser(name, email, department); err != nil {
				formError = err.Error()
			} else {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
		}

		// Re-render with the error and the submitted values preserved, so
		// the user can correct and resubmit.
		data := &pageData{
			FormName:       name,
			FormEmail:      email,
			FormDepartment: department,
			FormError:      formError,
		}
		data.Users, data.ListError = fetchUsers(client)
		RenderTemplate(w, "users/index.html", data)
	}
}

func fetchUsers(client *apiclient.Client) ([]models.User, string) {
	users, err := client.FetchUsers()
	if err != nil {
		slog.Error("failed to fetch users for page", "error", err)
		return nil, err.Error()
	}
	return users, ""
}
