package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raulo/crm/internal/auth"
	"github.com/raulo/crm/internal/config"
	"github.com/raulo/crm/internal/exporter"
	"github.com/raulo/crm/internal/files"
	"github.com/raulo/crm/internal/importer"
	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/reconcile"
	"github.com/raulo/crm/internal/search"
	"github.com/raulo/crm/internal/storage"
	"github.com/raulo/crm/internal/store"
	"github.com/raulo/crm/internal/tui"
	"github.com/raulo/crm/internal/validate"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "login":
			if len(os.Args) < 4 {
				fmt.Fprintf(os.Stderr, "Usage: crm login <email> <password>\n")
				os.Exit(1)
			}
			runLogin(os.Args[2], os.Args[3])
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: crm import <file.csv|file.xlsx> [country]\n")
				os.Exit(1)
			}
			country := ""
			if len(os.Args) >= 4 {
				country = os.Args[3]
			}
			runImport(os.Args[2], country)
			return
		case "paste":
			country := ""
			if len(os.Args) >= 3 {
				country = os.Args[2]
			}
			runPaste(country)
			return
		case "search":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: crm search <query>\n")
				os.Exit(1)
			}
			runSearch(strings.Join(os.Args[2:], " "))
			return
		case "export":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: crm export <out.csv>\n")
				os.Exit(1)
			}
			runExport(os.Args[2])
			return
		case "report":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: crm report <file>\n")
				os.Exit(1)
			}
			runReport(os.Args[2])
			return
		case "reconcile":
			runReconcile()
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	// No args - run the dashboard
	runDashboard()
}

func printHelp() {
	help := `crm - internal business dashboard

Usage:
  crm                        Open the dashboard
  crm login <email> <pass>   Log in and remember the session
  crm import <file> [country]  Import leads from CSV/XLSX
  crm paste [country]        Import pasted rows from stdin
  crm search <query>         Fuzzy-search leads by name
  crm export <out.csv>       Export all leads to CSV
  crm report <file>          Log today's daily report upload
  crm reconcile              List leads with no matching folder
  crm help                   Show this help

Dashboard keybindings:
  j/k         Move down/up
  tab         Switch between tree and leads
  /           Filter leads
  s           Cycle status filter
  Y           Copy selected lead's phone
  i           Import clipboard rows into the selected folder
  d           Delete selected folder/lead
  q           Quit

Data storage:
  ~/.config/crm/
`
	fmt.Print(help)
}

// openStore loads config and opens the data store.
func openStore() (*store.Store, *config.Config) {
	configPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir, err = storage.DefaultDataDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting data directory: %v\n", err)
			os.Exit(1)
		}
	}

	st, err := storage.OpenStorage(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return store.Open(st, logger), cfg
}

// sessionUser resolves the logged-in user from config, if any.
func sessionUser(cfg *config.Config) model.User {
	if cfg.SessionEmail == "" {
		return model.User{}
	}
	user, ok := auth.UserForEmail(cfg.SessionEmail)
	if !ok {
		return model.User{}
	}
	return user
}

func runLogin(email, password string) {
	user, ok := auth.Login(email, password)
	if !ok {
		fmt.Fprintf(os.Stderr, "Invalid credentials\n")
		os.Exit(1)
	}

	configPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.SessionEmail = user.Email
	if err := config.Save(configPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
}

func runDashboard() {
	s, cfg := openStore()

	app := tui.NewApp(tui.AppParams{
		Store:          s,
		User:           sessionUser(cfg),
		DefaultCountry: cfg.DefaultCountry,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}

func runImport(path, country string) {
	s, cfg := openStore()
	if country == "" {
		country = cfg.DefaultCountry
	}

	result, err := importer.ParseFile(path, importer.Context{Country: country})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	if result.Empty() {
		fmt.Println("No importable rows found.")
		return
	}

	count := s.ImportLeads(result.Leads, country)
	fmt.Printf("Imported %d leads into %s\n", count, country)
}

func runPaste(country string) {
	s, cfg := openStore()
	if country == "" {
		country = cfg.DefaultCountry
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		os.Exit(1)
	}

	result := importer.ParseText(string(raw), importer.Context{Country: country})
	if result.Empty() {
		fmt.Println("No importable rows found.")
		return
	}

	count := s.ImportLeads(result.Leads, country)
	fmt.Printf("Imported %d leads into %s\n", count, country)
}

func runSearch(query string) {
	s, _ := openStore()

	results := search.FuzzySearchLeads(s.Leads(), query)
	if len(results) == 0 {
		fmt.Println("No matches.")
		return
	}

	limit := len(results)
	if limit > 10 {
		limit = 10
	}
	for _, r := range results[:limit] {
		fmt.Printf("%-30s %-16s %s > %s  [%s]\n",
			r.Lead.Name, r.Lead.Phone, r.Lead.City, r.Lead.Category, r.Lead.Status)
	}
}

func runExport(path string) {
	s, _ := openStore()

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	leads := s.Leads()
	if err := exporter.WriteCSV(f, leads); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d leads to %s\n", len(leads), path)
}

func runReport(path string) {
	s, cfg := openStore()

	uploader := "Telecaller"
	if user := sessionUser(cfg); user.Name != "" {
		uploader = user.Name
	}

	report := model.Report{
		ID:       model.GenerateID(),
		Date:     time.Now().Format("2006-01-02"),
		FileName: filepath.Base(path),
		Uploader: uploader,
	}
	if err := validate.Report(report); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid report: %v\n", err)
		os.Exit(1)
	}

	// Stage the upload through the session registry. The bytes live only
	// as long as this session; the log keeps the entry, not the file.
	registry := files.NewRegistry()
	defer registry.Close()
	if _, err := registry.StoreFile(report.ID, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading report file: %v\n", err)
		os.Exit(1)
	}

	s.AddReport(report)
	fmt.Printf("Logged report %s for %s\n", report.FileName, report.Date)
}

func runReconcile() {
	s, _ := openStore()

	orphans := reconcile.Scan(s.Folders(), s.Leads())
	if len(orphans) == 0 {
		fmt.Println("All leads match a folder path.")
		return
	}

	for _, o := range orphans {
		fmt.Printf("%-30s %s\n", o.Lead.Name, o.Reason)
	}
	fmt.Printf("%d orphaned leads\n", len(orphans))
}
