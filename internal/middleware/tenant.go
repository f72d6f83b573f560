package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const tenantIDKey = "tenantID"

// TenantRequired resolves the calling tenant from the X-Tenant-ID
// header. Who is allowed to act for a tenant is the gateway's problem;
// this service only needs the partition key.
func TenantRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-Tenant-ID")
		if raw == "" {
			return BadRequest("X-Tenant-ID header is required")
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			return BadRequest("X-Tenant-ID must be a UUID")
		}

		c.Locals(tenantIDKey, tenantID)
		return c.Next()
	}
}

func GetTenantID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(tenantIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
