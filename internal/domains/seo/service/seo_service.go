package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	categoryrepo "perkpal-backend/internal/domains/category/repository"
	pagerepo "perkpal-backend/internal/domains/page/repository"
	perkmodel "perkpal-backend/internal/domains/perk/model"
	perkrepo "perkpal-backend/internal/domains/perk/repository"
	postmodel "perkpal-backend/internal/domains/post/model"
	postrepo "perkpal-backend/internal/domains/post/repository"
	settingssvc "perkpal-backend/internal/domains/settings/service"
	"perkpal-backend/pkg/cache"
)

const sitemapCacheKey = "public:sitemap"

// defaultRobots is served when no robots_txt setting has been saved.
const defaultRobots = "User-agent: *\nAllow: /\n"

type ServiceInterface interface {
	Sitemap(ctx context.Context) ([]byte, error)
	Robots(ctx context.Context) (string, error)
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// SEOService assembles the sitemap from every published public URL and
// serves robots.txt from the site settings.
type SEOService struct {
	perks      perkrepo.PerkRepository
	posts      postrepo.PostRepository
	pages      pagerepo.PageRepository
	categories categoryrepo.CategoryRepository
	settings   settingssvc.ServiceInterface
	cache      cache.Cache
	baseURL    string
	cacheTTL   time.Duration
}

func NewSEOService(
	perks perkrepo.PerkRepository,
	posts postrepo.PostRepository,
	pages pagerepo.PageRepository,
	categories categoryrepo.CategoryRepository,
	settings settingssvc.ServiceInterface,
	c cache.Cache,
	baseURL string,
	cacheTTL time.Duration,
) ServiceInterface {
	return &SEOService{
		perks:      perks,
		posts:      posts,
		pages:      pages,
		categories: categories,
		settings:   settings,
		cache:      c,
		baseURL:    strings.TrimRight(baseURL, "/"),
		cacheTTL:   cacheTTL,
	}
}

func (s *SEOService) Sitemap(ctx context.Context) ([]byte, error) {
	var cached []byte
	if found, err := s.cache.Get(ctx, sitemapCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, urlEntry{Loc: s.baseURL + "/"})

	perkSlugs, err := s.perks.ListSlugs(ctx, perkmodel.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to collect perk urls: %w", err)
	}
	for _, slug := range perkSlugs {
		set.URLs = append(set.URLs, urlEntry{Loc: s.baseURL + "/perks/" + slug})
	}

	categorySlugs, err := s.categories.ListCategorySlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect category urls: %w", err)
	}
	for _, slug := range categorySlugs {
		set.URLs = append(set.URLs, urlEntry{Loc: s.baseURL + "/categories/" + slug})
	}

	postSlugs, err := s.posts.ListSlugs(ctx, postmodel.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to collect post urls: %w", err)
	}
	for _, slug := range postSlugs {
		set.URLs = append(set.URLs, urlEntry{Loc: s.baseURL + "/blog/" + slug})
	}

	pageSlugs, err := s.pages.ListSlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect page urls: %w", err)
	}
	for _, slug := range pageSlugs {
		set.URLs = append(set.URLs, urlEntry{Loc: s.baseURL + "/" + slug})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	out := append([]byte(xml.Header), body...)

	_ = s.cache.Set(ctx, sitemapCacheKey, out, s.cacheTTL)
	return out, nil
}

func (s *SEOService) Robots(ctx context.Context) (string, error) {
	settings, err := s.settings.GetPublic(ctx)
	if err != nil {
		return "", err
	}

	body := settings.RobotsTxt
	if strings.TrimSpace(body) == "" {
		body = defaultRobots
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return body + "Sitemap: " + s.baseURL + "/sitemap.xml\n", nil
}
