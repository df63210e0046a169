// Command socialctl is a terminal client for the social API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-social/internal/client"
)

const defaultAPI = "http://localhost:8080/api"

const usage = `usage: socialctl [-api URL] [-session FILE] <command> [args]

commands:
  register -username U -email E -password P [-picture URL]
  login -username U -password P
  logout
  feed
  post -content TEXT [-image URL]
  show POST_ID
  comment POST_ID TEXT
  like POST_ID
  follow USER_ID
  profile USER_ID
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("socialctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	apiURL := fs.String("api", envOr("SOCIALCTL_API", defaultAPI), "API base URL")
	sessionPath := fs.String("session", "", "Session file (default $HOME/.socialctl/session.json)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if *sessionPath == "" {
		path, err := client.DefaultSessionPath()
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		*sessionPath = path
	}

	c := client.New(*apiURL, client.NewSessionStore(*sessionPath))
	cmd := &command{client: c, out: stdout}

	if err := cmd.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		var usageErr usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(stderr, "error:", err)
			fmt.Fprint(stderr, usage)
			return 2
		}
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type usageError string

func (e usageError) Error() string { return string(e) }

type command struct {
	client *client.Client
	out    io.Writer
}

func (c *command) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "register":
		return c.register(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		if err := c.client.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Logged out.")
		return nil
	case "feed":
		return c.feed(ctx)
	case "post":
		return c.post(ctx, args)
	case "show":
		return c.show(ctx, args)
	case "comment":
		return c.comment(ctx, args)
	case "like":
		return c.like(ctx, args)
	case "follow":
		return c.follow(ctx, args)
	case "profile":
		return c.profile(ctx, args)
	default:
		return usageError(fmt.Sprintf("unknown command %q", name))
	}
}

func (c *command) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("username", "", "")
	email := fs.String("email", "", "")
	password := fs.String("password", "", "")
	picture := fs.String("picture", "", "")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}

	userID, err := c.client.Register(ctx, *username, *email, *password, *picture)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Registered %s with id %d. You can now log in.\n", *username, userID)
	return nil
}

func (c *command) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("username", "", "")
	password := fs.String("password", "", "")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}

	user, err := c.client.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Logged in as %s (id %d).\n", user.Username, user.ID)
	return nil
}

func (c *command) feed(ctx context.Context) error {
	posts, err := c.client.Feed(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(c.out, "No posts yet.")
		return nil
	}
	for _, p := range posts {
		fmt.Fprintf(c.out, "#%d %s (%s)\n", p.PostID, p.Username, formatTime(p.CreatedAt))
		fmt.Fprintf(c.out, "  %s\n", p.Content)
		if p.ImageURL != nil {
			fmt.Fprintf(c.out, "  [image] %s\n", *p.ImageURL)
		}
		fmt.Fprintf(c.out, "  %d likes, %d comments\n", p.LikeCount, p.CommentCount)
	}
	return nil
}

func (c *command) post(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	content := fs.String("content", "", "")
	image := fs.String("image", "", "")
	if err := fs.Parse(args); err != nil {
		return usageError(err.Error())
	}
	if *content == "" && fs.NArg() > 0 {
		*content = strings.Join(fs.Args(), " ")
	}

	postID, err := c.client.CreatePost(ctx, *content, *image)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Post created with id %d.\n", postID)
	return nil
}

func (c *command) show(ctx context.Context, args []string) error {
	postID, err := idArg(args, "POST_ID")
	if err != nil {
		return err
	}

	post, err := c.client.Post(ctx, postID)
	if err != nil {
		return err
	}
	liked, err := c.client.LikeStatus(ctx, postID)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "#%d %s (%s)\n", post.PostID, post.Username, formatTime(post.CreatedAt))
	fmt.Fprintf(c.out, "  %s\n", post.Content)
	if post.ImageURL != nil {
		fmt.Fprintf(c.out, "  [image] %s\n", *post.ImageURL)
	}
	state := "not liked"
	if liked {
		state = "liked"
	}
	fmt.Fprintf(c.out, "  %d likes (%s)\n", post.LikeCount, state)
	fmt.Fprintf(c.out, "Comments (%d):\n", len(post.Comments))
	for _, cm := range post.Comments {
		fmt.Fprintf(c.out, "  %s: %s\n", cm.Username, cm.Content)
	}
	return nil
}

func (c *command) comment(ctx context.Context, args []string) error {
	postID, err := idArg(args, "POST_ID")
	if err != nil {
		return err
	}

	commentID, err := c.client.AddComment(ctx, postID, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Comment %d added to post %d.\n", commentID, postID)
	return nil
}

func (c *command) like(ctx context.Context, args []string) error {
	postID, err := idArg(args, "POST_ID")
	if err != nil {
		return err
	}

	liked, err := c.client.ToggleLike(ctx, postID)
	if err != nil {
		return err
	}
	if liked {
		fmt.Fprintf(c.out, "Liked post %d.\n", postID)
	} else {
		fmt.Fprintf(c.out, "Unliked post %d.\n", postID)
	}
	return nil
}

func (c *command) follow(ctx context.Context, args []string) error {
	userID, err := idArg(args, "USER_ID")
	if err != nil {
		return err
	}

	following, err := c.client.ToggleFollow(ctx, userID)
	if err != nil {
		return err
	}
	if following {
		fmt.Fprintf(c.out, "Now following user %d.\n", userID)
	} else {
		fmt.Fprintf(c.out, "Unfollowed user %d.\n", userID)
	}
	return nil
}

func (c *command) profile(ctx context.Context, args []string) error {
	userID, err := idArg(args, "USER_ID")
	if err != nil {
		return err
	}

	p, err := c.client.Profile(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s (id %d)\n", p.Username, p.UserID)
	if p.Bio != nil && *p.Bio != "" {
		fmt.Fprintf(c.out, "  %s\n", *p.Bio)
	}
	fmt.Fprintf(c.out, "  Joined %s\n", formatTime(p.CreatedAt))
	fmt.Fprintf(c.out, "  %d posts, %d followers, %d following\n", p.PostCount, p.FollowerCount, p.FollowingCount)

	session, err := c.client.Session()
	if err != nil || session.UserID == userID {
		return nil
	}
	following, err := c.client.IsFollowing(ctx, userID)
	if err != nil {
		return err
	}
	if following {
		fmt.Fprintln(c.out, "  You follow this user.")
	} else {
		fmt.Fprintln(c.out, "  You do not follow this user.")
	}
	return nil
}

func idArg(args []string, name string) (int64, error) {
	if len(args) == 0 {
		return 0, usageError(name + " is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError(fmt.Sprintf("invalid %s %q", name, args[0]))
	}
	return id, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return t.Local().Format("2006-01-02 15:04")
}
