package translateController

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"lexify/config"
	"lexify/middleware"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// languageCodes maps supported language names to ISO 639-1 codes
var languageCodes = map[string]string{
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"russian":    "ru",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"mandarin":   "zh",
	"hindi":      "hi",
	"arabic":     "ar",
	"dutch":      "nl",
	"turkish":    "tr",
	"english":    "en",
}

type translateResult struct {
	ResponseStatus int `json:"responseStatus"`
	ResponseData   struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
}

var client = resty.New().SetTimeout(10 * time.Second)

// isTimeoutError reports whether a transport error was caused by a
// deadline or network timeout rather than some other failure.
func isTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err)
}

// Translate resolves an English phrase into the target language via the
// MyMemory public API
func Translate(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTranslate").(*struct {
		Text           string `json:"text"`
		TargetLanguage string `json:"targetLanguage"`
	})

	code, ok := languageCodes[strings.ToLower(strings.TrimSpace(reqData.TargetLanguage))]
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported target language!", nil)
	}

	if code == "en" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Translated successfully!", fiber.Map{
			"originalText":   reqData.Text,
			"translatedText": reqData.Text,
			"targetLanguage": reqData.TargetLanguage,
		})
	}

	var result translateResult
	resp, err := client.R().
		SetQueryParam("q", reqData.Text).
		SetQueryParam("langpair", fmt.Sprintf("en|%s", code)).
		SetResult(&result).
		Get(config.AppConfig.TranslateApiUrl)

	if err != nil {
		log.Printf("Translation request failed: %v", err)
		if isTimeoutError(err) {
			return middleware.JsonResponse(c, fiber.StatusGatewayTimeout, false, "Translation service timed out!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to translate text!", nil)
	}

	if resp.StatusCode() == fiber.StatusTooManyRequests || result.ResponseStatus == fiber.StatusTooManyRequests {
		return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false, "Translation limit reached. Please try again later!", nil)
	}

	if resp.StatusCode() != fiber.StatusOK || result.ResponseData.TranslatedText == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to translate text!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Translated successfully!", fiber.Map{
		"originalText":   reqData.Text,
		"translatedText": result.ResponseData.TranslatedText,
		"targetLanguage": reqData.TargetLanguage,
		"match":          result.ResponseData.Match,
	})
}
