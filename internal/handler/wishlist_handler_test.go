package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistHandler(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/wishlist/items", `{"product_id":"lost-cherry"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// saving twice keeps one entry
	rec = s.do(t, http.MethodPost, "/api/wishlist/items", `{"product_id":"lost-cherry"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var list WishlistResponse
	decode(t, rec, &list)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, 1, s.gauges.wishlist)

	var toggled WishlistToggleResponse
	rec = s.do(t, http.MethodPost, "/api/wishlist/items/oud-wood/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &toggled)
	assert.Equal(t, WishlistToggleResponse{ProductID: "oud-wood", InWishlist: true, Count: 2}, toggled)

	rec = s.do(t, http.MethodPost, "/api/wishlist/items/oud-wood/toggle", "")
	decode(t, rec, &toggled)
	assert.False(t, toggled.InWishlist)
	assert.Equal(t, 1, toggled.Count)

	decode(t, s.do(t, http.MethodGet, "/api/wishlist", ""), &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "lost-cherry", list.Items[0].ID)

	rec = s.do(t, http.MethodDelete, "/api/wishlist/items/lost-cherry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	assert.Zero(t, list.Count)
	assert.False(t, s.wishlist.Contains("lost-cherry"))

	s.do(t, http.MethodPost, "/api/wishlist/items", `{"product_id":"sauvage"}`)
	rec = s.do(t, http.MethodDelete, "/api/wishlist", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, s.wishlist.Count())
	assert.Zero(t, s.gauges.wishlist)
}

func TestWishlistHandler_Errors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/wishlist/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/wishlist/items", `{"product_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/wishlist/items/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec, nil)
	assert.False(t, env.Success)
	assert.Zero(t, s.wishlist.Count())
}
