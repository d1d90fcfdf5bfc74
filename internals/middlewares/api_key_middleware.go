package middlewares

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	helper "github.com/Emmynem/alphaprimeclub-api/internals/helpers"
)

// APIKeyLocal is where the verified key is stashed for handlers.
const APIKeyLocal = "api_key"

// VerifyKey gates a route behind the club API keys. The key may arrive in the
// alphaprimeclub-header-key header, a `key` query param, or a `key` body field.
func VerifyKey(apiKeys []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		allowed[k] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		key := c.Get(constants.HeaderKey)
		if key == "" {
			key = c.Query("key")
		}
		if key == "" && len(c.Body()) > 0 {
			var body struct {
				Key string `json:"key"`
			}
			if err := sonic.Unmarshal(c.Body(), &body); err == nil {
				key = body.Key
			}
		}

		if key == "" {
			return helper.Error(c, fiber.StatusForbidden, "No key provided!")
		}
		if _, ok := allowed[key]; !ok {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid API Key!")
		}

		c.Locals(APIKeyLocal, key)
		return c.Next()
	}
}

// APIKey returns the verified key for the current request.
func APIKey(c *fiber.Ctx) string {
	if key, ok := c.Locals(APIKeyLocal).(string); ok {
		return key
	}
	return ""
}
