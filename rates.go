package tally

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

// FallbackRates is the built-in rate table, in RUB per unit. It is used
// whenever the live rate fetch fails, so a summary can always be produced
// offline; the result is then flagged as not live.
var FallbackRates = Rates{
	"RUB":  1,
	"USD":  90,
	"USDT": 90,
	"EUR":  100,
	"THB":  2.6,
	"HKD":  11.5,
	"MYR":  19,
	"KZT":  0.19,
	"BTC":  5500000,
}

// RateTable is the outcome of a rate fetch: the table itself and whether it
// came from the live provider or from the built-in fallback.
type RateTable struct {
	Rates Rates
	Live  bool
}

// FetchRates retrieves the current exchange rates into the home currency.
// For RUB it asks the Bank of Russia daily feed first, then the
// open.er-api.com free endpoint. Responses are cached on disk for the day.
// On any failure it logs and returns the fallback table; callers never have
// to handle an error to valuate.
func FetchRates(homeCurrency string) RateTable {
	if homeCurrency == "RUB" {
		if rates, err := fetchCBR(); err == nil {
			return RateTable{Rates: rates, Live: true}
		} else {
			log.Printf("cbr fetch failed, trying generic provider: %v", err)
		}
	}
	return fetchOpenER(homeCurrency)
}

// fetchCBR reads the Bank of Russia daily quotes. The feed nests each quote
// under $.Valute.<code> with a Value for Nominal units of the currency.
func fetchCBR() (Rates, error) {
	addr := "https://www.cbr-xml-daily.ru/daily_json.js"

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get("$.Valute", jobj)
	if err != nil {
		return nil, fmt.Errorf("unexpected cbr payload: %w", err)
	}
	valutes, ok := jval.(map[string]any)
	if !ok || len(valutes) == 0 {
		return nil, fmt.Errorf("unexpected cbr payload: no quotes")
	}

	rates := Rates{"RUB": 1}
	for code, v := range valutes {
		quote, ok := v.(map[string]any)
		if !ok {
			continue
		}
		value, _ := quote["Value"].(float64)
		nominal, _ := quote["Nominal"].(float64)
		if value > 0 && nominal > 0 {
			rates[code] = value / nominal
		}
	}
	return rates, nil
}

// fetchOpenER reads the open.er-api.com free endpoint for any home currency.
func fetchOpenER(homeCurrency string) RateTable {
	addr := "https://open.er-api.com/v6/latest/" + homeCurrency

	var payload struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := jwget(daily(), addr, &payload); err != nil {
		log.Printf("rate fetch failed, using built-in table: %v", err)
		return RateTable{Rates: FallbackRates, Live: false}
	}
	if payload.Result != "success" || len(payload.Rates) == 0 {
		log.Printf("rate provider returned %q, using built-in table", payload.Result)
		return RateTable{Rates: FallbackRates, Live: false}
	}

	// The provider quotes units of foreign currency per one home unit;
	// valuation wants home units per one foreign unit.
	rates := make(Rates, len(payload.Rates))
	for code, perHome := range payload.Rates {
		if perHome > 0 {
			rates[code] = 1 / perHome
		}
	}
	rates[homeCurrency] = 1
	return RateTable{Rates: rates, Live: true}
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key includes today's date, so the cache expires daily.
	key := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client whose responses are cached until the end of the day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
