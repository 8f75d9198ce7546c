package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"perkpal-backend/pkg/container"
)

func TestReorderRoutesUsePost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(&container.Container{})

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	paths := []string{
		"/api/v1/admin/categories/reorder",
		"/api/v1/admin/subcategories/reorder",
		"/api/v1/admin/perks/reorder",
		"/api/v1/admin/sections/reorder",
	}
	for _, path := range paths {
		assert.True(t, registered["POST "+path], "expected POST %s", path)
		assert.False(t, registered["PUT "+path], "unexpected PUT %s", path)
	}
}
