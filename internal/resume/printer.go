package resume

import (
	"fmt"
	"io"
	"strings"

	"github.com/naka-gawa/github-resume/internal/domain"
	"github.com/pterm/pterm"
)

// Printer writes the resume sections to an output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Display prints the whole resume: the biography first, then the GitHub
// activity in report, the chart files written, and the closing section.
func (p *Printer) Display(bio *Biography, report *domain.Report, charts []string) error {
	steps := []func() error{
		func() error { return p.Identity(bio) },
		func() error { return p.Education(bio) },
		func() error { return p.Competitions(bio) },
		func() error { return p.Skills(bio) },
		func() error { return p.CodingExperience(report, charts) },
		func() error { return p.More(bio, report.User) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Identity prints the personal details.
func (p *Printer) Identity(bio *Biography) error {
	p.section("Identity")
	age := ""
	if bio.Age > 0 {
		age = fmt.Sprint(bio.Age)
	}
	return p.table(pterm.TableData{
		{"Name", bio.Name},
		{"Age", age},
		{"Origin", bio.Origin},
		{"Phone", bio.Phone},
		{"Emails", strings.Join(bio.Emails, ", ")},
	}, false)
}

// Education prints the schools attended.
func (p *Printer) Education(bio *Biography) error {
	p.section("Education")
	p.info("Checking education background...")
	return p.bullets([]string{
		"High school: " + bio.Education.HighSchool,
		"University: " + bio.Education.University,
	})
}

// Competitions prints the competitions taken part in.
func (p *Printer) Competitions(bio *Biography) error {
	p.section("Competitions")
	p.info("Validating competition experience...")
	return p.bullets(bio.Competitions)
}

// Skills prints one row per skill category.
func (p *Printer) Skills(bio *Biography) error {
	p.section("Skills")
	p.info("Analyzing skill set...")
	data := pterm.TableData{{"Category", "Skills"}}
	for _, s := range bio.Skills {
		data = append(data, []string{s.Category, strings.Join(s.Items, ", ")})
	}
	return p.table(data, true)
}

// CodingExperience prints the GitHub activity: language share, the monthly
// timeline, the activity summary and the chart files.
func (p *Printer) CodingExperience(report *domain.Report, charts []string) error {
	p.section("GitHub Repository Timeline")

	if len(report.Languages) == 0 {
		p.warning("No language data available.")
	} else {
		data := pterm.TableData{{"Language", "Share"}}
		for _, share := range report.Languages {
			data = append(data, []string{share.Language, fmt.Sprintf("%.2f%%", share.Percent)})
		}
		if err := p.table(data, true); err != nil {
			return err
		}
	}

	envelope := report.Timeline
	if len(envelope.Timeline) == 0 {
		p.warning("No commit activity available.")
	} else {
		data := pterm.TableData{{"Period", "Commits", "Repositories", "Languages"}}
		for _, period := range envelope.Timeline {
			repos := make([]string, 0, len(period.Repos))
			for _, r := range period.Repos {
				repos = append(repos, fmt.Sprintf("%s(%d)", r.Name, r.Commits))
			}
			data = append(data, []string{
				period.Period,
				fmt.Sprint(period.TotalCommits),
				strings.Join(repos, " "),
				strings.Join(period.Languages, ", "),
			})
		}
		if err := p.table(data, true); err != nil {
			return err
		}
	}

	lines := []string{
		fmt.Sprintf("Total stars: %d", envelope.TotalStars),
		fmt.Sprintf("Total downloads: %d", envelope.TotalDownloads),
	}
	if !envelope.AccountCreated.IsZero() {
		lines = append(lines, "Member since: "+envelope.AccountCreated.Format("January 2006"))
	}
	if s := report.Summary; s.ActiveMonths > 0 {
		lines = append(lines,
			fmt.Sprintf("Commits: %d over %d active months", s.TotalCommits, s.ActiveMonths),
			fmt.Sprintf("Per active month: mean %.2f, median %.1f, max %d (%s)", s.MeanPerMonth, s.MedianPerMonth, s.MaxPerMonth, s.MostActivePeriod),
		)
		top := make([]string, 0, len(s.TopRepositories))
		for _, r := range s.TopRepositories {
			top = append(top, fmt.Sprintf("%s (%d)", r.Name, r.Commits))
		}
		lines = append(lines, "Most active repositories: "+strings.Join(top, ", "))
	}
	if c := report.Contributions; c != nil {
		lines = append(lines, fmt.Sprintf("Last year: %d commits, %d pull requests, %d reviews, %d issues",
			c.TotalCommits, c.TotalPullRequests, c.TotalReviews, c.TotalIssues))
	}
	for _, chart := range charts {
		lines = append(lines, "Chart written: "+chart)
	}
	return p.bullets(lines)
}

// More prints the profile link and the remaining strengths.
func (p *Printer) More(bio *Biography, user string) error {
	p.section("More")
	p.printf("For more info, please visit the GitHub profile: https://github.com/%s\n", user)
	if len(bio.Strengths) == 0 {
		return nil
	}
	p.printf("Also good at:\n")
	return p.bullets(bio.Strengths)
}

func (p *Printer) section(title string) {
	fmt.Fprint(p.out, pterm.DefaultSection.Sprint(title))
}

func (p *Printer) info(message string) {
	fmt.Fprintln(p.out, pterm.Info.Sprint(message))
}

func (p *Printer) warning(message string) {
	fmt.Fprintln(p.out, pterm.Warning.Sprint(message))
}

func (p *Printer) printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Printer) table(data pterm.TableData, header bool) error {
	s, err := pterm.DefaultTable.WithHasHeader(header).WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(p.out, s)
	return nil
}

func (p *Printer) bullets(items []string) error {
	list := make([]pterm.BulletListItem, 0, len(items))
	for _, item := range items {
		list = append(list, pterm.BulletListItem{Level: 0, Text: item})
	}
	s, err := pterm.DefaultBulletList.WithItems(list).Srender()
	if err != nil {
		return fmt.Errorf("render list: %w", err)
	}
	fmt.Fprint(p.out, s)
	return nil
}
