package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phya/waitlist/internal/config"
	"github.com/phya/waitlist/internal/form"
	"github.com/phya/waitlist/internal/logging"
	"github.com/phya/waitlist/internal/submission"
	"github.com/phya/waitlist/internal/tui"
	"github.com/phya/waitlist/internal/ui"
	"github.com/phya/waitlist/internal/urls"
	"github.com/phya/waitlist/internal/waitlist"
)

// Global flags
var (
	targetName  string
	targetsFile string
	landingURL  string
	logLevel    string
)

// Resolved by setup before any command runs
var (
	target      config.Target
	catalogue   *config.Catalogue
	attribution waitlist.Attribution
	logger      *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&targetName, "target", "", "Deployment target: development, production or local (default from PHYA_TARGET)")
	rootCmd.PersistentFlags().StringVar(&targetsFile, "targets", "", "Deployment target catalogue file (overrides the built-in targets)")
	rootCmd.PersistentFlags().StringVar(&landingURL, "landing-url", "", "Landing page URL or query string carrying utm_source/utm_medium/utm_campaign")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level on stderr: debug, info, warn, error (default from PHYA_LOG_LEVEL)")

	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(targetsCmd)
}

// setup initializes logging and resolves the deployment target
func setup(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = env.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		// GetLogger falls back to a silent logger
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger = logging.GetLogger()

	catalogue, err = config.Load(targetsFile)
	if err != nil {
		return fmt.Errorf("failed to load deployment targets: %w", err)
	}

	target, err = config.Resolve(catalogue, targetName, env)
	if err != nil {
		return err
	}

	attribution = waitlist.ParseAttribution(landingURL)

	logger.Debug("Resolved deployment target",
		zap.String("target", string(target.Name)),
		zap.String("base_url", target.BaseURL),
		zap.String("tenant", target.TenantDomain),
		zap.String("utm_source", attribution.Source),
	)
	return nil
}

func newSubmissionClient() *submission.Client {
	client := submission.NewClient(target)
	client.Logger = logger
	return client
}

// runSignup opens the interactive signup screen
func runSignup(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return fmt.Errorf("the signup screen needs a terminal; use 'phya-waitlist join' for scripted signups")
	}

	return tui.Run(tui.Options{
		Submitter:      newSubmissionClient(),
		Target:         fmt.Sprintf("%s · %s", target.Name, target.TenantDomain),
		ContactAddress: target.ContactEmail,
		Attribution:    attribution,
		Logger:         logger,
		Context:        cmd.Context(),
	})
}

// Join command flags
var (
	joinName            string
	joinEmail           string
	joinPhone           string
	joinLocation        string
	joinMessage         string
	joinPilot           bool
	joinPilotCity       string
	joinPSIRANumber     string
	joinPSIRAGrade      string
	joinYearsExperience string
	joinPrimaryRole     string
	joinArmedStatus     string
	joinYes             bool
	joinDryRun          bool
)

// joinCmd submits one entry without the interactive screen
var joinCmd = &cobra.Command{
	Use:       "join <client|provider>",
	Short:     "Join the waiting list without the interactive screen",
	ValidArgs: []string{"client", "provider"},
	Args:      cobra.ExactArgs(1),
	Long: `Submit a single waiting list entry from flags.

The entry goes through the same checks as the interactive forms: name and
email are always required, and providers must also give their PSIRA number,
grade, years of experience, primary role and armed status.

Flags that do not belong to the chosen form are ignored. Provider
applications are always entered into the pilot programme.

Providers can check their registration at ` + urls.PSIRARegistry + `.

The command exits with a non-zero status unless the entry was accepted.`,
	Example: `  # Join as a client
  phya-waitlist join client --name "Jane Doe" --email jane@example.com

  # Join as a client and apply for the Johannesburg pilot
  phya-waitlist join client --name "Jane Doe" --email jane@example.com \
    --pilot --pilot-city Johannesburg

  # Apply as a provider against the local backend, without prompting
  phya-waitlist join provider --target local --yes \
    --name "Sipho Ndlovu" --email sipho@example.co.za \
    --psira-number 1234567 --psira-grade B --years-experience 6 \
    --primary-role "Armed response" --armed-status armed

  # Check the entry without sending it
  phya-waitlist join client --name "Jane Doe" --email jane@example.com --dry-run`,
	RunE: runJoin,
}

func init() {
	f := joinCmd.Flags()
	f.StringVar(&joinName, "name", "", "Full name (required)")
	f.StringVar(&joinEmail, "email", "", "Email address (required)")
	f.StringVar(&joinPhone, "phone", "", "Phone number")
	f.StringVar(&joinLocation, "location", "", "Suburb or city")
	f.StringVar(&joinMessage, "message", "", "Anything else we should know")
	f.BoolVar(&joinPilot, "pilot", false, "Apply for the pilot programme (clients)")
	f.StringVar(&joinPilotCity, "pilot-city", "", "Preferred pilot city")
	f.StringVar(&joinPSIRANumber, "psira-number", "", "PSIRA registration number (providers)")
	f.StringVar(&joinPSIRAGrade, "psira-grade", "", "PSIRA grade A to E (providers)")
	f.StringVar(&joinYearsExperience, "years-experience", "", "Years of experience (providers)")
	f.StringVar(&joinPrimaryRole, "primary-role", "", "Primary role, e.g. close protection (providers)")
	f.StringVar(&joinArmedStatus, "armed-status", "", "armed or unarmed (providers)")
	f.BoolVarP(&joinYes, "yes", "y", false, "Submit without asking for confirmation")
	f.BoolVar(&joinDryRun, "dry-run", false, "Validate and show the entry without submitting it")
}

func joinValues() map[waitlist.Field]string {
	return map[waitlist.Field]string{
		waitlist.FieldName:            joinName,
		waitlist.FieldEmail:           joinEmail,
		waitlist.FieldPhone:           joinPhone,
		waitlist.FieldLocation:        joinLocation,
		waitlist.FieldMessage:         joinMessage,
		waitlist.FieldPilotCity:       joinPilotCity,
		waitlist.FieldPSIRANumber:     joinPSIRANumber,
		waitlist.FieldPSIRAGrade:      joinPSIRAGrade,
		waitlist.FieldYearsExperience: joinYearsExperience,
		waitlist.FieldPrimaryRole:     joinPrimaryRole,
		waitlist.FieldArmedStatus:     joinArmedStatus,
	}
}

func runJoin(cmd *cobra.Command, args []string) error {
	segment, err := parseSegmentArg(args[0])
	if err != nil {
		return err
	}
	desc := waitlist.DescriptorFor(segment)
	client := newSubmissionClient()

	p := ui.NewPrinter(os.Stdout)
	p.PrintHeader(desc.SubmitLabel, "phya-waitlist join "+args[0],
		ui.Param{Key: "Target", Value: string(target.Name)},
		ui.Param{Key: "Endpoint", Value: client.Endpoint()},
		ui.Param{Key: "Form", Value: desc.Title},
	)

	surface := newFlagSurface(joinValues(), joinPilot, ui.NewStatusControl(p, desc.SubmitLabel))

	entry, errs := waitlist.Collect(surface, desc, attribution)
	if len(errs) > 0 {
		details := make([]ui.Param, 0, len(errs)-1)
		for _, e := range errs[1:] {
			details = append(details, ui.Param{Key: "Also", Value: waitlist.UserMessage(e)})
		}
		p.PrintError("Not submitted", waitlist.UserMessage(errs[0]), details...)
		return fmt.Errorf("entry is incomplete")
	}

	if joinDryRun {
		p.Println(entry.FormatDetailed())
		p.PrintSuccess("Dry run", "The entry is valid and was not submitted.")
		return nil
	}

	if !joinYes && ui.IsInteractive() {
		if !p.Confirm("Submit this entry?", strings.Split(strings.TrimRight(entry.FormatDetailed(), "\n"), "\n")...) {
			return nil
		}
	}

	ctrl := form.NewController(desc, surface, client, p,
		form.WithAttribution(attribution),
		form.WithContactAddress(target.ContactEmail),
		form.WithLogger(logger),
	)

	state := ctrl.Submit(cmd.Context())
	if state != form.Succeeded {
		return fmt.Errorf("entry was not added to the waiting list (%s)", strings.ToLower(state.String()))
	}
	return nil
}

// parseSegmentArg maps the join argument to the form it selects
func parseSegmentArg(arg string) (waitlist.Segment, error) {
	s, err := waitlist.ParseSegment(arg)
	if err != nil {
		return "", fmt.Errorf("unknown form %q (expected client or provider)", arg)
	}
	return s, nil
}

// flagSurface is a form.Surface whose fields come from command-line flags
type flagSurface struct {
	*ui.StatusControl

	values map[waitlist.Field]string
	pilot  bool
}

func newFlagSurface(values map[waitlist.Field]string, pilot bool, control *ui.StatusControl) *flagSurface {
	return &flagSurface{StatusControl: control, values: values, pilot: pilot}
}

// Value implements waitlist.FieldReader
func (s *flagSurface) Value(f waitlist.Field) string {
	return s.values[f]
}

// Checked implements waitlist.FieldReader
func (s *flagSurface) Checked(f waitlist.Field) bool {
	return f == waitlist.FieldPilotProgramApplicant && s.pilot
}

// Clear implements form.FieldClearer
func (s *flagSurface) Clear() {
	s.values = make(map[waitlist.Field]string)
	s.pilot = false
}

// Targets command flags
var targetsExportPath string

// targetsCmd lists the deployment targets
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List deployment targets",
	Long: `List the backend deployments entries can be submitted to.

The selected target is marked with an asterisk. Select a target with
--target or the PHYA_TARGET environment variable.

Targets can be customised by exporting the built-in list, editing it, and
either leaving it in the config directory or passing it with --targets.`,
	Example: `  # Show targets
  phya-waitlist targets

  # Export the built-in targets for editing
  phya-waitlist targets export

  # Export to a specific file
  phya-waitlist targets export --output ./targets.yaml`,
	RunE: runTargets,
}

var targetsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the built-in targets to a file for editing",
	RunE:  runTargetsExport,
}

func init() {
	targetsExportCmd.Flags().StringVarP(&targetsExportPath, "output", "o", "", "Output file (default: the user config directory)")
	targetsCmd.AddCommand(targetsExportCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	fmt.Printf("Deployment targets (catalogue version %d):\n\n", catalogue.Version)

	for _, name := range catalogue.Names() {
		t := catalogue.Targets[name]
		marker := " "
		if name == target.Name {
			marker = "*"
		}
		fmt.Printf("%s %-12s %s\n", marker, name, t.BaseURL)
		fmt.Printf("  %-12s tenant %s, contact %s\n", "", t.TenantDomain, t.ContactEmail)
	}
	return nil
}

func runTargetsExport(cmd *cobra.Command, args []string) error {
	path := targetsExportPath
	if path == "" {
		var err error
		path, err = config.GetCataloguePath()
		if err != nil {
			return err
		}
	}

	if err := config.ExportCatalogue(path); err != nil {
		return err
	}
	fmt.Printf("✓ Targets written to %s\n", path)
	return nil
}
