// Package mirror provides the page mirroring pipeline. It fetches each page,
// rewrites its asset references to local paths, downloads the assets and
// writes the rewritten page.
package mirror

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/pagemirror"
)

// Mirrorer mirrors pages one after another.
type Mirrorer struct {
	Fetcher     pagemirror.Fetcher
	Parser      pagemirror.Parser
	Workspaces  pagemirror.WorkspaceOpener
	Downloaded  pagemirror.DownloadSet
	Cache       pagemirror.AssetCache
	Extensions  pagemirror.Extensions
	RateLimiter pagemirror.DomainLimiter // optional
}

// Result holds the outcome of a mirror run.
type Result struct {
	Pages  int
	Assets int // assets fetched over the network
	Cached int // asset references served from an earlier download
	Bytes  int // bytes written, pages and assets
}

// Run mirrors urls in order and stops at the first failure. Files written
// before the failure are left in place. The Downloaded set is shared by all
// pages of the run.
func (m *Mirrorer) Run(ctx context.Context, urls []string, progress pagemirror.ProgressFunc) (*Result, error) {
	result := &Result{}
	track := func(p pagemirror.Progress) {
		switch {
		case p.Asset == "":
			result.Pages++
		case p.Cached:
			result.Cached++
		default:
			result.Assets++
		}
		result.Bytes += p.Bytes
		if progress != nil {
			progress(p)
		}
	}

	for _, u := range urls {
		if err := m.MirrorPage(ctx, u, track); err != nil {
			return result, fmt.Errorf("mirror %s: %w", u, err)
		}
	}
	return result, nil
}

// MirrorPage mirrors a single page into the workspace named after its URL.
// Nothing is written when the page has a <base> element or no <title>.
func (m *Mirrorer) MirrorPage(ctx context.Context, pageURL string, progress pagemirror.ProgressFunc) error {
	if progress == nil {
		progress = func(pagemirror.Progress) {}
	}

	body, err := m.fetch(ctx, pageURL)
	if err != nil {
		return err
	}

	doc, err := m.Parser.Parse(body)
	if err != nil {
		return err
	}
	if doc.HasBase() {
		return pagemirror.Errorf(pagemirror.EUNSUPPORTED, "page %s has a <base> tag", pageURL)
	}
	title, ok := doc.Title()
	if !ok {
		return pagemirror.Errorf(pagemirror.EMISSINGTITLE, "page %s has no <title> tag", pageURL)
	}
	pageName := pagemirror.Sanitize(title)
	if pageName == "" {
		return pagemirror.Errorf(pagemirror.EMISSINGTITLE, "page %s has a title with no usable characters", pageURL)
	}

	ws, err := m.Workspaces.Open(ctx, pagemirror.Sanitize(pageURL))
	if err != nil {
		return err
	}

	exts := m.Extensions
	if len(exts) == 0 {
		exts = pagemirror.DefaultExtensions
	}

	for _, ref := range doc.Refs(exts.Match) {
		link, err := pagemirror.NewAssetLink(pageURL, ref.Value())
		if err != nil {
			return err
		}
		ref.Set(link.LocalPath())

		if err := m.download(ctx, ws, pageURL, link, progress); err != nil {
			return err
		}
	}

	out, err := doc.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", pageURL, err)
	}
	path, err := ws.WritePage(ctx, pageName+".html", out)
	if err != nil {
		return err
	}
	progress(pagemirror.Progress{Page: pageURL, Path: path, Bytes: len(out)})
	return nil
}

// download stores link in ws. A URL already in the Downloaded set is never
// fetched again; its cached copy is reused instead. Reuse reads from the
// cache because workspace files can be overwritten by a later asset with
// the same local name.
func (m *Mirrorer) download(ctx context.Context, ws pagemirror.Workspace, pageURL string, link pagemirror.AssetLink, progress pagemirror.ProgressFunc) error {
	if prev, ok := m.Downloaded.Lookup(link.URL); ok {
		path, err := ws.CopyAsset(ctx, prev, link.Subfolder, link.Name)
		if err != nil {
			return err
		}
		progress(pagemirror.Progress{Page: pageURL, Asset: link.URL, Path: path, Cached: true})
		return nil
	}

	data, err := m.fetch(ctx, link.URL)
	if err != nil {
		return err
	}
	path, err := ws.WriteAsset(ctx, link.Subfolder, link.Name, data)
	if err != nil {
		return err
	}
	cached, err := m.Cache.Put(ctx, link.URL, data)
	if err != nil {
		return err
	}
	m.Downloaded.Add(link.URL, cached)
	progress(pagemirror.Progress{Page: pageURL, Asset: link.URL, Path: path, Bytes: len(data)})
	return nil
}

func (m *Mirrorer) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if m.RateLimiter != nil {
		if err := m.RateLimiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return nil, err
		}
	}
	return m.Fetcher.Fetch(ctx, rawURL)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
