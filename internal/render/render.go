package render

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/khanghh/authportal/internal/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

var globalVars = fiber.Map{
	"siteName": "authportal",
}

func InitValues(data fiber.Map) {
	for key, val := range data {
		globalVars[key] = val
	}
}

func NewHtmlEngine(templateDir string) *html.Engine {
	if templateDir != "" {
		return html.NewFileSystem(http.Dir(templateDir), ".html")
	}
	renderFS, _ := fs.Sub(templateFS, "templates")
	return html.NewFileSystem(http.FS(renderFS), ".html")
}

func RenderLogin(ctx *fiber.Ctx, data LoginPageData) error {
	return ctx.Render("login", fiber.Map{
		"siteName":      globalVars["siteName"],
		"csrfToken":     data.CSRFToken,
		"username":      data.Username,
		"usernameError": data.FormErrors.Get(validation.FieldUsername),
		"passwordError": data.FormErrors.Get(validation.FieldPassword),
		"submittable":   data.Submittable,
		"errorMsg":      data.ErrorMsg,
		"flashMsg":      data.FlashMsg,
	})
}

func RenderSignup(ctx *fiber.Ctx, data SignupPageData) error {
	return ctx.Render("signup", fiber.Map{
		"siteName":             globalVars["siteName"],
		"csrfToken":            data.CSRFToken,
		"name":                 data.Name,
		"id":                   data.ID,
		"email":                data.Email,
		"age":                  data.Age,
		"nameError":            data.FormErrors.Get(validation.FieldName),
		"idError":              data.FormErrors.Get(validation.FieldID),
		"emailError":           data.FormErrors.Get(validation.FieldEmail),
		"ageError":             data.FormErrors.Get(validation.FieldAge),
		"passwordError":        data.FormErrors.Get(validation.FieldPassword),
		"confirmPasswordError": data.FormErrors.Get(validation.FieldConfirmPassword),
		"submittable":          data.Submittable,
		"errorMsg":             data.ErrorMsg,
	})
}

func RenderHome(ctx *fiber.Ctx, data HomePageData) error {
	return ctx.Render("home", fiber.Map{
		"siteName":  globalVars["siteName"],
		"csrfToken": data.CSRFToken,
		"username":  data.Username,
		"token":     maskToken(data.Token),
		"issuedAt":  formatTime(data.IssuedAt),
		"expiresAt": formatTime(data.ExpiresAt),
	})
}

var errorTitles = map[int]string{
	fiber.StatusBadRequest:          "잘못된 요청입니다.",
	fiber.StatusForbidden:           "접근 권한이 없습니다.",
	fiber.StatusNotFound:            "페이지를 찾을 수 없습니다.",
	fiber.StatusMethodNotAllowed:    "허용되지 않은 요청입니다.",
	fiber.StatusInternalServerError: "서버 오류가 발생했습니다.",
}

func RenderError(ctx *fiber.Ctx, code int) error {
	title, ok := errorTitles[code]
	if !ok {
		title = errorTitles[fiber.StatusInternalServerError]
	}
	return ctx.Status(code).Render("error", fiber.Map{
		"siteName": globalVars["siteName"],
		"code":     code,
		"title":    title,
	})
}
