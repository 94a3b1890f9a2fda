package dohdns

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAnswers_RequestedTypeOnly(t *testing.T) {
	answers := []DnsAnswer{
		{Name: "example.com.", Type: 1, TTL: 300, Data: "93.184.216.34"},
		{Name: "example.com.", Type: 5, TTL: 600, Data: "alias.example.com."},
		{Name: "example.com.", Type: 1, TTL: 300, Data: "93.184.216.35"},
	}

	filtered := filterAnswers(answers, TypeA)

	require.Len(t, filtered, 2)
	// Values verbatim, decoded order preserved.
	assert.Equal(t, "93.184.216.34", filtered[0].Data)
	assert.Equal(t, "93.184.216.35", filtered[1].Data)
}

func TestFilterAnswers_ANYKeepsEverything(t *testing.T) {
	answers := []DnsAnswer{
		{Type: 1, Data: "93.184.216.34"},
		{Type: 5, Data: "alias.example.com."},
		{Type: 15, Data: "10 mx.example.com."},
	}

	filtered := filterAnswers(answers, TypeANY)

	assert.Len(t, filtered, 3)
}

func TestSortMXAnswers_AscendingWithPriorityStripped(t *testing.T) {
	answers := []DnsAnswer{
		{Type: 15, Data: "10 mx2.example.com"},
		{Type: 15, Data: "5 mx1.example.com"},
	}

	sorted := sortMXAnswers(answers)

	require.Len(t, sorted, 2)
	assert.Equal(t, "mx1.example.com", sorted[0].Data)
	assert.Equal(t, "mx2.example.com", sorted[1].Data)
}

func TestSortMXAnswers_DropsUnparseableEntries(t *testing.T) {
	answers := []DnsAnswer{
		{Type: 15, Data: "10 mx2.example.com"},
		{Type: 15, Data: "high mx0.example.com"}, // priority not an integer
		{Type: 15, Data: "20"},                   // no hostname after priority
		{Type: 1, Data: "93.184.216.34"},         // not an MX record
		{Type: 15, Data: "5 mx1.example.com"},
	}

	sorted := sortMXAnswers(answers)

	require.Len(t, sorted, 2)
	assert.Equal(t, "mx1.example.com", sorted[0].Data)
	assert.Equal(t, "mx2.example.com", sorted[1].Data)
}

func TestSortMXAnswers_EqualPrioritiesKeepDecodedOrder(t *testing.T) {
	answers := []DnsAnswer{
		{Type: 15, Data: "10 first.example.com"},
		{Type: 15, Data: "10 second.example.com"},
		{Type: 15, Data: "10 third.example.com"},
	}

	sorted := sortMXAnswers(answers)

	require.Len(t, sorted, 3)
	assert.Equal(t, "first.example.com", sorted[0].Data)
	assert.Equal(t, "second.example.com", sorted[1].Data)
	assert.Equal(t, "third.example.com", sorted[2].Data)
}

const mxBody = `{"Status":0,"Answer":[` +
	`{"name":"example.com.","type":15,"TTL":300,"data":"10 mx2.example.com"},` +
	`{"name":"example.com.","type":15,"TTL":300,"data":"5 mx1.example.com"}]}`

func TestResolveMXSorted(t *testing.T) {
	client := &mockClient{script: []clientCall{
		{status: http.StatusOK, body: mxBody},
	}}
	d := newTestDns(t, client, NewServer("https://doh1.test/resolve", time.Second))

	answers, err := d.ResolveMXSorted(context.Background(), "example.com")

	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "mx1.example.com", answers[0].Data)
	assert.Equal(t, "mx2.example.com", answers[1].Data)
}

func TestResolveMX_KeepsPriorityInData(t *testing.T) {
	client := &mockClient{script: []clientCall{
		{status: http.StatusOK, body: mxBody},
	}}
	d := newTestDns(t, client, NewServer("https://doh1.test/resolve", time.Second))

	answers, err := d.ResolveMX(context.Background(), "example.com")

	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "10 mx2.example.com", answers[0].Data)
	assert.Equal(t, "5 mx1.example.com", answers[1].Data)
}

func TestResolve_MissingAnswerSection(t *testing.T) {
	client := &mockClient{script: []clientCall{
		{status: http.StatusOK, body: `{"Status":0}`},
	}}
	d := newTestDns(t, client, NewServer("https://doh1.test/resolve", time.Second))

	answers, err := d.ResolveA(context.Background(), "example.com")

	assert.NoError(t, err)
	assert.Empty(t, answers)
}

func TestResolveType_MatchesDedicatedMethod(t *testing.T) {
	aaaaBody := `{"Status":0,"Answer":[{"name":"example.com.","type":28,"TTL":300,"data":"2606:2800:220:1:248:1893:25c8:1946"}]}`

	byName := &mockClient{script: []clientCall{{status: http.StatusOK, body: aaaaBody}}}
	dedicated := &mockClient{script: []clientCall{{status: http.StatusOK, body: aaaaBody}}}

	d1 := newTestDns(t, byName, NewServer("https://doh1.test/resolve", time.Second))
	d2 := newTestDns(t, dedicated, NewServer("https://doh1.test/resolve", time.Second))

	fromName, err := d1.ResolveType(context.Background(), "example.com", "aaaa")
	require.NoError(t, err)
	fromMethod, err := d2.ResolveAAAA(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, fromMethod, fromName)
	assert.Equal(t, byName.calls, dedicated.calls)
}

func TestResolveType_UnknownName(t *testing.T) {
	client := &mockClient{}
	d := newTestDns(t, client, NewServer("https://doh1.test/resolve", time.Second))

	_, err := d.ResolveType(context.Background(), "example.com", "bogus")

	assert.ErrorIs(t, err, ErrInvalidRecordType)
	assert.Empty(t, client.calls)
}
