package provider

// DefaultFeedPreset is the feed served when FEED is not configured
const DefaultFeedPreset = "yonhap"

// FeedPresets maps friendly names to Korean news RSS feed URLs
var FeedPresets = map[string]string{
	"yonhap":    "https://www.yna.co.kr/rss/news.xml",
	"kbs":       "http://world.kbs.co.kr/rss/rss_news.htm?lang=k",
	"hankyoreh": "https://www.hani.co.kr/rss/",
	"sbs":       "https://news.sbs.co.kr/news/SectionRssFeed.do?sectionId=01",
}

// ResolveFeedURL resolves a feed identifier to a URL
// If the input is a preset name, returns the corresponding URL
// Otherwise, returns the input as-is (assuming it's a direct URL)
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}
