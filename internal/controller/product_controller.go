package controller

import (
	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/model"
)

// ListProducts returns the plan catalog.
func ListProducts(c *fiber.Ctx) error {
	return c.JSON(Store.Products())
}

func GetProduct(c *fiber.Ctx) error {
	rec, err := Store.Product(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}

func CreateProduct(c *fiber.Ctx) error {
	input := new(model.Product)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.AddProduct(*input)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func UpdateProduct(c *fiber.Ctx) error {
	patch := new(model.ProductPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	rec, err := Store.UpdateProduct(c.Params("id"), *patch)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(rec)
}
