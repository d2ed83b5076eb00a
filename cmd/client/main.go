package main

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/pkg/client"
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const usage = `usage: client [-server URL] [-session FILE] <command> [args]

commands:
  search [-diet D] [-cuisine C] [-type T] [query...]
  show <recipeId>
  register <username> <email>
  login <email-or-username>
  logout
  review <recipeId> <rating 1-5> [comment...]
  health
`

// terminalFd and readPassword are replaced in tests to avoid touching a real terminal.
var (
	terminalFd = func(in io.Reader) (int, bool) {
		f, ok := in.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return 0, false
		}
		return int(f.Fd()), true
	}
	readPassword = term.ReadPassword
)

type cli struct {
	api    *client.Client
	store  *client.SessionStore
	state  *client.State
	stdin  io.Reader
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// realMain reports a failure as a single "error:" line and exit code 1.
func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := run(args, stdin, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	server := fs.String("server", envOr("RECIPE_SERVER", client.DefaultServerURL), "API base URL")
	sessionPath := fs.String("session", "", "session file (default: user config dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	if *sessionPath == "" {
		p, err := client.DefaultSessionPath()
		if err != nil {
			return err
		}
		*sessionPath = p
	}

	store := client.NewSessionStore(*sessionPath)
	state := &client.State{}
	var opts []client.Option

	session, err := store.Load()
	switch {
	case err == nil:
		state.Session = session
		opts = append(opts, client.WithToken(session.Token))
	case !errors.Is(err, client.ErrNoSession):
		return err
	}

	c := &cli{
		api:    client.New(*server, opts...),
		store:  store,
		state:  state,
		stdin:  stdin,
		in:     bufio.NewReader(stdin),
		out:    stdout,
		errOut: stderr,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "search":
		return c.search(rest)
	case "show":
		return c.show(rest)
	case "register":
		return c.register(rest)
	case "login":
		return c.login(rest)
	case "logout":
		return c.logout()
	case "review":
		return c.review(rest)
	case "health":
		return c.health()
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *cli) search(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	diet := fs.String("diet", "", "diet filter")
	cuisine := fs.String("cuisine", "", "cuisine filter")
	mealType := fs.String("type", "", "meal type filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.state.Filters = domain.RecipeSearchRequest{
		Query:   strings.Join(fs.Args(), " "),
		Diet:    *diet,
		Cuisine: *cuisine,
		Type:    *mealType,
	}
	results, err := c.api.SearchRecipes(c.state.Filters)
	if err != nil {
		return err
	}
	c.state.Results = results
	return client.RenderResults(c.out, c.state.Results)
}

func (c *cli) show(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <recipeId>")
	}

	recipe, err := c.api.GetRecipe(args[0])
	if err != nil {
		return err
	}
	reviews, err := c.api.GetReviews(args[0])
	if err != nil {
		return err
	}
	c.state.Open(recipe, reviews)

	if err := client.RenderRecipe(c.out, c.state.Recipe); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "\nReviews")
	if err := client.RenderReviews(c.out, c.state.Reviews); err != nil {
		return err
	}
	if !c.state.LoggedIn() {
		fmt.Fprintln(c.out, "\nLog in to leave a review.")
	}
	return nil
}

func (c *cli) register(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: register <username> <email>")
	}
	password, err := c.readPassword()
	if err != nil {
		return err
	}

	res, err := c.api.Register(domain.UserRegisterRequest{Username: args[0], Email: args[1], Password: password})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "registered %s (%s), now log in\n", args[0], res.UserID)
	return nil
}

func (c *cli) login(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <email-or-username>")
	}
	password, err := c.readPassword()
	if err != nil {
		return err
	}

	res, err := c.api.Login(args[0], password)
	if err != nil {
		return err
	}
	session := client.Session{Token: res.Token, User: res.User}
	if err := c.store.Save(session); err != nil {
		return err
	}
	c.state.Session = &session
	fmt.Fprintf(c.out, "logged in as %s\n", c.state.Username())
	return nil
}

func (c *cli) logout() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.state.Session = nil
	fmt.Fprintln(c.out, "logged out")
	return nil
}

func (c *cli) review(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: review <recipeId> <rating 1-5> [comment...]")
	}
	if !c.state.LoggedIn() {
		return client.ErrNotLoggedIn
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be a number from 1 to 5, got %q", args[1])
	}

	res, err := c.api.PostReview(domain.ReviewCreateRequest{
		RecipeID: domain.RecipeID(args[0]),
		Rating:   rating,
		Comment:  strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s review saved for recipe %s\n", client.FormatStars(res.Rating), res.RecipeID)
	return nil
}

func (c *cli) health() error {
	res, err := c.api.Health()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s (db %s)\n", res.Status, res.DB)
	return nil
}

// readPassword reads without echo on a terminal and falls back to a plain
// line when stdin is piped.
func (c *cli) readPassword() (string, error) {
	if fd, ok := terminalFd(c.stdin); ok {
		fmt.Fprint(c.errOut, "Password: ")
		pw, err := readPassword(fd)
		fmt.Fprintln(c.errOut)
		return string(pw), err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
