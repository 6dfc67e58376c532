package veille

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gocolly/colly/v2"
)

// Source describes one page to pull watch entries from. Selector
// matches headline elements on the page.
type Source struct {
	Name     string
	URL      string
	Type     string
	Selector string
}

// DefaultSources cover the two watch pages of the site, one feed per
// veille type.
func DefaultSources() []Source {
	return []Source{
		{
			Name:     "dev.to",
			URL:      "https://dev.to",
			Type:     usecase.VeilleTypeTechnologique,
			Selector: "h2.crayons-story__title a",
		},
		{
			Name:     "cnil",
			URL:      "https://www.cnil.fr/fr/actualites",
			Type:     usecase.VeilleTypeJuridique,
			Selector: "h3 a",
		},
	}
}

type Fetcher struct {
	repo   repository.VeilleRepository
	logger *log.Logger
}

func NewFetcher(repo repository.VeilleRepository, logger *log.Logger) *Fetcher {
	return &Fetcher{repo: repo, logger: logger}
}

type fetchedItem struct {
	title string
	link  string
}

// FetchAll pulls every source and stores headlines that are not already
// present for that veille type. Returns the number of new entries.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) (int, error) {
	if f == nil || f.repo == nil {
		return 0, fmt.Errorf("nil fetcher/repo")
	}
	if len(sources) == 0 {
		sources = DefaultSources()
	}

	inserted := 0
	for _, src := range sources {
		n, err := f.fetchSource(ctx, src)
		if err != nil {
			if f.logger != nil {
				f.logger.Printf("[Veille] fetch error source=%s err=%v", src.Name, err)
			}
			continue
		}
		inserted += n
	}
	return inserted, nil
}

func (f *Fetcher) fetchSource(ctx context.Context, src Source) (int, error) {
	items, err := scrapePage(ctx, src)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, it := range items {
		title := strings.TrimSpace(it.title)
		if title == "" {
			continue
		}

		exists, err := f.repo.ExistsByTypeAndTitle(ctx, src.Type, title)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}

		content := it.link
		if content == "" {
			content = src.URL
		}
		if _, err := f.repo.Create(ctx, portfolio.VeilleContent{
			Type:    src.Type,
			Title:   title,
			Content: content,
		}); err != nil {
			return inserted, err
		}
		inserted++
	}

	if f.logger != nil {
		f.logger.Printf("[Veille] source=%s scraped=%d inserted=%d", src.Name, len(items), inserted)
	}
	return inserted, nil
}

func scrapePage(ctx context.Context, src Source) ([]fetchedItem, error) {
	host := hostFromURL(src.URL)
	c := colly.NewCollector(
		colly.AllowedDomains(host),
	)

	_ = c.Limit(&colly.LimitRule{DomainGlob: "*" + host + "*", Parallelism: 2, RandomDelay: 750 * time.Millisecond, Delay: 400 * time.Millisecond})

	items := make([]fetchedItem, 0)

	c.OnHTML(src.Selector, func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.Text)
		if title == "" {
			return
		}
		items = append(items, fetchedItem{
			title: title,
			link:  e.Request.AbsoluteURL(strings.TrimSpace(e.Attr("href"))),
		})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "PortfolioVeille/0.1")
		r.Headers.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(src.URL); err != nil {
		return nil, err
	}

	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]fetchedItem, 0, len(items))
	for _, it := range items {
		if _, ok := dedup[it.title]; ok {
			continue
		}
		dedup[it.title] = struct{}{}
		out = append(out, it)
	}
	return out, nil
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
