package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/forgo/clubhive/api/internal/app"
	"github.com/forgo/clubhive/api/internal/export"
	"github.com/forgo/clubhive/api/internal/model"
)

// client runs commands against one wired app and session
type client struct {
	app  *app.App
	sess *model.Session
	out  io.Writer
}

type command struct {
	name    string
	usage   string
	summary string
	args    int
	flags   func(*pflag.FlagSet, *commandFlags)
	run     func(c *client, ctx context.Context, f *commandFlags, args []string) error
}

// commandFlags holds every flag any command accepts
type commandFlags struct {
	mine     bool
	others   bool
	club     string
	upcoming bool
	limit    int
	format   string
	outDir   string
	json     bool
}

var commands = []command{
	{
		name: "seed", usage: "seed", summary: "load demo data into empty collections",
		run: (*client).seed,
	},
	{
		name: "login", usage: "login EMAIL", summary: "sign in by email", args: 1,
		run: (*client).login,
	},
	{
		name: "logout", usage: "logout", summary: "sign out",
		run: (*client).logout,
	},
	{
		name: "whoami", usage: "whoami", summary: "show the signed-in identity",
		flags: jsonFlag,
		run:   (*client).whoami,
	},
	{
		name: "switch-role", usage: "switch-role ROLE", summary: "become the first student or admin", args: 1,
		run: (*client).switchRole,
	},
	{
		name: "clubs", usage: "clubs [--mine|--others]", summary: "list clubs",
		flags: func(fs *pflag.FlagSet, f *commandFlags) {
			fs.BoolVar(&f.mine, "mine", false, "only clubs joined or owned")
			fs.BoolVar(&f.others, "others", false, "only clubs not joined")
			jsonFlag(fs, f)
		},
		run: (*client).clubs,
	},
	{
		name: "join", usage: "join CLUB", summary: "join a club", args: 1,
		run: (*client).join,
	},
	{
		name: "events", usage: "events [--club ID] [--upcoming]", summary: "list events",
		flags: func(fs *pflag.FlagSet, f *commandFlags) {
			fs.StringVar(&f.club, "club", "", "only events of this club")
			fs.BoolVar(&f.upcoming, "upcoming", false, "only events today or later, soonest first")
			fs.IntVar(&f.limit, "limit", 0, "maximum upcoming events")
			jsonFlag(fs, f)
		},
		run: (*client).events,
	},
	{
		name: "register", usage: "register EVENT", summary: "register for an event", args: 1,
		run: (*client).register,
	},
	{
		name: "pass", usage: "pass EVENT", summary: "show your pass token for an event", args: 1,
		run: (*client).pass,
	},
	{
		name: "report", usage: "report EVENT [--format] [--out DIR]", summary: "download an attendance report", args: 1,
		flags: func(fs *pflag.FlagSet, f *commandFlags) {
			fs.StringVar(&f.format, "format", "json", "json, yaml or cbor")
			fs.StringVarP(&f.outDir, "out", "o", ".", "directory to write to, or - for stdout")
		},
		run: (*client).report,
	},
	{
		name: "checkin", usage: "checkin TOKEN", summary: "mark a pass token attended", args: 1,
		run: (*client).checkin,
	},
}

func jsonFlag(fs *pflag.FlagSet, f *commandFlags) {
	fs.BoolVar(&f.json, "json", false, "output as JSON")
}

func lookup(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

// execute parses args[0] as a command name and runs it
func (c *client) execute(ctx context.Context, args []string) error {
	cmd, ok := lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown command %q (run clubctl help)", args[0])
	}

	var f commandFlags
	fs := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	fs.SetOutput(c.out)
	fs.Usage = func() {
		fmt.Fprintf(c.out, "Usage: clubctl %s\n\n%s\n", cmd.usage, cmd.summary)
		fs.PrintDefaults()
	}
	if cmd.flags != nil {
		cmd.flags(fs, &f)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) != cmd.args {
		return fmt.Errorf("usage: clubctl %s", cmd.usage)
	}
	return cmd.run(c, ctx, &f, rest)
}

func (c *client) writeJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ============================================================================
// Session
// ============================================================================

func (c *client) seed(ctx context.Context, _ *commandFlags, _ []string) error {
	result, err := c.app.Seeder.Seed(ctx)
	if err != nil {
		return err
	}
	if len(result.Seeded) == 0 {
		fmt.Fprintln(c.out, "All collections already present.")
		return nil
	}
	fmt.Fprintf(c.out, "Seeded %s.\n", strings.Join(result.Seeded, ", "))
	return nil
}

func (c *client) login(ctx context.Context, _ *commandFlags, args []string) error {
	ok, err := c.app.Sessions.Login(ctx, c.sess, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no account matches %q", args[0])
	}
	id := c.sess.Current()
	fmt.Fprintf(c.out, "Signed in as %s (%s).\n", id.Name, id.Role)
	return nil
}

func (c *client) logout(ctx context.Context, _ *commandFlags, _ []string) error {
	if err := c.app.Sessions.Logout(ctx, c.sess); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Signed out.")
	return nil
}

func (c *client) whoami(_ context.Context, f *commandFlags, _ []string) error {
	id := c.app.Sessions.Current(c.sess)
	if f.json {
		return c.writeJSON(id)
	}
	if id == nil {
		fmt.Fprintln(c.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(c.out, "%s <%s> %s\n", id.Name, id.Email, id.Role)
	return nil
}

func (c *client) switchRole(ctx context.Context, _ *commandFlags, args []string) error {
	req := model.SwitchRoleRequest{Role: model.Role(strings.ToLower(args[0]))}
	if errs := req.Validate(); len(errs) > 0 {
		return fmt.Errorf("%s", errs[0].Message)
	}
	ok, err := c.app.Sessions.SwitchRole(ctx, c.sess, req.Role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no %s identity to switch to", req.Role)
	}
	id := c.sess.Current()
	fmt.Fprintf(c.out, "Now acting as %s (%s).\n", id.Name, id.Role)
	return nil
}

// ============================================================================
// Clubs
// ============================================================================

func (c *client) clubs(ctx context.Context, f *commandFlags, _ []string) error {
	if f.mine && f.others {
		return fmt.Errorf("--mine and --others are mutually exclusive")
	}

	var (
		clubs []model.Club
		err   error
	)
	switch {
	case f.mine:
		clubs, err = c.app.Clubs.ListMine(ctx, c.sess)
	case f.others:
		clubs, err = c.app.Clubs.ListOthers(ctx, c.sess)
	default:
		clubs, err = c.app.Clubs.ListAll(ctx)
	}
	if err != nil {
		return err
	}

	if f.json {
		return c.writeJSON(clubs)
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER")
	for _, club := range clubs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", club.ID, club.Name, club.OwnerID)
	}
	return tw.Flush()
}

func (c *client) join(ctx context.Context, _ *commandFlags, args []string) error {
	membership, err := c.app.Clubs.Join(ctx, c.sess, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Member of %s since %s.\n", membership.ClubID, membership.JoinedOn.Format(model.DateLayout))
	return nil
}

// ============================================================================
// Events
// ============================================================================

func (c *client) events(ctx context.Context, f *commandFlags, _ []string) error {
	var (
		events []model.Event
		err    error
	)
	if f.upcoming {
		events, err = c.app.Events.ListUpcoming(ctx, 0)
		if err == nil {
			events = filterEvents(events, model.EventFilter{ClubID: f.club}, f.limit)
		}
	} else {
		events, err = c.app.Events.List(ctx, model.EventFilter{ClubID: f.club})
	}
	if err != nil {
		return err
	}

	if f.json {
		return c.writeJSON(events)
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tTITLE\tCAPACITY")
	for _, e := range events {
		capacity := "unlimited"
		if e.Capacity != nil {
			capacity = fmt.Sprint(*e.Capacity)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Time, e.Title, capacity)
	}
	return tw.Flush()
}

// filterEvents keeps matching events, truncated to limit when positive
func filterEvents(events []model.Event, filter model.EventFilter, limit int) []model.Event {
	kept := events[:0]
	for i := range events {
		if filter.Matches(&events[i]) {
			kept = append(kept, events[i])
		}
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func (c *client) register(ctx context.Context, _ *commandFlags, args []string) error {
	reg, err := c.app.Events.Register(ctx, c.sess, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Registered for %s.\nPass: %s\n", reg.EventID, reg.PassToken)
	return nil
}

func (c *client) pass(ctx context.Context, _ *commandFlags, args []string) error {
	reg, err := c.app.Events.MyRegistration(ctx, c.sess, args[0])
	if err != nil {
		return err
	}
	if reg == nil {
		return fmt.Errorf("not registered for %s", args[0])
	}
	fmt.Fprintln(c.out, reg.PassToken)
	return nil
}

func (c *client) checkin(ctx context.Context, _ *commandFlags, args []string) error {
	reg, err := c.app.Events.CheckIn(ctx, c.sess, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Checked in %s at %s.\n", reg.UserID, reg.EventID)
	return nil
}

// ============================================================================
// Reports
// ============================================================================

func (c *client) report(ctx context.Context, f *commandFlags, args []string) error {
	format, err := export.ParseFormat(f.format)
	if err != nil {
		return err
	}
	report, err := c.app.Reports.BuildReport(ctx, c.sess, args[0])
	if err != nil {
		return err
	}

	if f.outDir == "-" {
		return export.Encode(c.out, report, format)
	}

	path := filepath.Join(f.outDir, export.Filename(report.Event, format))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := export.Encode(file, report, format); err != nil {
		_ = file.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(c.out, "Wrote %s (%d registered, %d attended).\n", path, report.TotalRegistrations, report.TotalAttended)
	return nil
}
