package confluence

// Space represents a Confluence space summary.
type Space struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description struct {
		Plain struct {
			Value string `json:"value"`
		} `json:"plain"`
	} `json:"description"`
}

// SpaceRef is the space stub embedded in content responses.
type SpaceRef struct {
	ID   int64  `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Version is a content revision marker.
type Version struct {
	Number int    `json:"number"`
	When   string `json:"when"`
}

// Label is a content label.
type Label struct {
	Name string `json:"name"`
}

// Page represents Confluence content (pages, blog posts). Only the fields
// the gateway reads are modelled; the upstream API is free to add more.
type Page struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Status  string   `json:"status"`
	Title   string   `json:"title"`
	Space   SpaceRef `json:"space"`
	Version Version  `json:"version"`
	Excerpt string   `json:"excerpt"`
	Body    struct {
		Storage struct {
			Value          string `json:"value"`
			Representation string `json:"representation"`
		} `json:"storage"`
	} `json:"body"`
	Metadata struct {
		Labels struct {
			Results []Label `json:"results"`
		} `json:"labels"`
	} `json:"metadata"`
}

// Labels returns the page's label names.
func (p *Page) Labels() []string {
	names := make([]string, 0, len(p.Metadata.Labels.Results))
	for _, label := range p.Metadata.Labels.Results {
		names = append(names, label.Name)
	}
	return names
}
