package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/moneywise/moneywise/internal/adapters/outbound/router"
	"github.com/moneywise/moneywise/internal/adapters/outbound/tui"
	"github.com/moneywise/moneywise/internal/application"
	"github.com/moneywise/moneywise/internal/domain"
)

const prompt = "moneywise> "

const shellHelp = `commands:
  render        draw the dashboard for the current path
  toggle        open or close the mobile sidebar
  go PATH       follow a link to PATH
  back          return to the previous path
  read ID|all   mark one or every notification read
  list [N]      list notifications (all, or the first N)
  unread        show the unread count
  history       show visited paths
  help          show this help
  quit          leave the shell
`

func newShellCmd() *cobra.Command {
	var route string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive dashboard session",
		Long:  "Start a line-oriented session that keeps one dashboard in memory. Commands are read from stdin; run help inside the session for the list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd, route, false)
			if err != nil {
				return err
			}
			defer a.close()

			in := cmd.InOrStdin()
			s := &session{
				svc:         a.svc,
				router:      a.router,
				out:         cmd.OutOrStdout(),
				interactive: isTerminal(in),
			}
			if s.interactive {
				fmt.Fprint(s.out, tui.RenderBanner(a.cfg.Brand, route))
			}
			return s.run(in)
		},
	}

	cmd.Flags().StringVar(&route, "route", domain.PathDashboard, "Starting path")

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// session executes shell commands against one dashboard service.
type session struct {
	svc         *application.DashboardService
	router      *router.MemoryRouter
	out         io.Writer
	interactive bool
}

func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.exec(strings.Fields(line)) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// exec runs one command and reports whether the session continues.
func (s *session) exec(fields []string) bool {
	name, args := fields[0], fields[1:]

	switch name {
	case "render":
		fmt.Fprint(s.out, tui.RenderShell(s.svc.View("")))
	case "toggle":
		if s.svc.ToggleSidebar() {
			fmt.Fprintln(s.out, "sidebar open")
		} else {
			fmt.Fprintln(s.out, "sidebar closed")
		}
	case "go":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: go PATH")
			return true
		}
		s.svc.Navigate(args[0])
		s.location(args[0])
	case "back":
		s.location(s.router.Back())
	case "read":
		s.read(args)
	case "list":
		limit := 0
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				fmt.Fprintf(s.out, "invalid count %q\n", args[0])
				return true
			}
			limit = n
		}
		fmt.Fprint(s.out, tui.RenderNotifications(s.svc.Notifications(limit, false), s.svc.UnreadCount()))
	case "unread":
		unread := s.svc.UnreadCount()
		if badge := domain.UnreadBadge(unread); badge != "" {
			fmt.Fprintf(s.out, "%d unread (%s)\n", unread, badge)
		} else {
			fmt.Fprintln(s.out, "0 unread")
		}
	case "history":
		for i, p := range s.router.History() {
			fmt.Fprintf(s.out, "%3d  %s\n", i+1, p)
		}
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q (try help)\n", name)
	}
	return true
}

func (s *session) location(path string) {
	if item, ok := s.svc.ActiveNav(path); ok {
		fmt.Fprintf(s.out, "at %s (%s)\n", path, item.Label)
	} else {
		fmt.Fprintf(s.out, "at %s (no matching nav item)\n", path)
	}
}

func (s *session) read(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: read ID|all")
		return
	}
	if args[0] == "all" {
		n := s.svc.MarkAllAsRead()
		fmt.Fprintf(s.out, "marked %d read; %d unread\n", n, s.svc.UnreadCount())
		return
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "invalid notification id %q\n", args[0])
		return
	}
	if s.svc.MarkAsRead(id) {
		fmt.Fprintf(s.out, "marked #%d read; %d unread\n", id, s.svc.UnreadCount())
	} else {
		fmt.Fprintf(s.out, "nothing changed; %d unread\n", s.svc.UnreadCount())
	}
}
