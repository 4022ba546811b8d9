package osrs

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices/mapping", r.URL.Path)
		w.Write([]byte(`[
			{"examine":"A powerful bow.","id":20997,"members":true,"lowalch":480000,"limit":8,"value":1200000,"highalch":720000,"icon":"Twisted bow.png","name":"Twisted bow"},
			{"id":4151,"name":"Abyssal whip","members":true,"value":120001}
		]`))
	})

	mapping, err := c.Mapping(context.Background())
	require.NoError(t, err)
	require.Len(t, mapping, 2)

	assert.Equal(t, 20997, mapping[0].ID)
	assert.Equal(t, "Twisted bow", mapping[0].Name)
	require.NotNil(t, mapping[0].Limit)
	assert.Equal(t, 8, *mapping[0].Limit)
	assert.Nil(t, mapping[1].HighAlch)
}

func TestLatest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices/latest", r.URL.Path)
		assert.Equal(t, "4151", r.URL.Query().Get("id"))
		w.Write([]byte(`{"data":{"4151":{"high":1500000,"highTime":1700000000,"low":1490000,"lowTime":null}}}`))
	})

	prices, err := c.Latest(context.Background(), 4151)
	require.NoError(t, err)
	require.NotNil(t, prices)

	assert.Equal(t, int64(1500000), *prices.High)
	assert.Equal(t, int64(1490000), *prices.Low)
	assert.Nil(t, prices.LowTime)
}

func TestLatest_NoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	})

	prices, err := c.Latest(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, prices)
}
