// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/CemWebDev/python-todo-backend/internal/adapter"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/models"
)

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(ctx context.Context, args []string) (any, error)
}

// App dispatches one command line to the todo API.
type App struct {
	api      adapter.TodoAPI
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.TodoAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:    api,
		out:    out,
		logger: logger,
	}

	a.commands = map[string]command{
		"register": {usage: "register <email> <password>", minArgs: 2, maxArgs: 2, run: a.register},
		"login":    {usage: "login <email> <password>", minArgs: 2, maxArgs: 2, run: a.login},
		"logout":   {usage: "logout", run: a.logout},
		"list":     {usage: "list", run: a.list},
		"add":      {usage: "add <title> [description]", minArgs: 1, maxArgs: 2, run: a.add},
		"get":      {usage: "get <id>", minArgs: 1, maxArgs: 1, run: a.get},
		"update":   {usage: "update <id> <title> [description]", minArgs: 2, maxArgs: 3, run: a.update},
		"done":     {usage: "done <id>", minArgs: 1, maxArgs: 1, run: a.done},
		"delete":   {usage: "delete <id>", minArgs: 1, maxArgs: 1, run: a.delete},
		"health":   {usage: "health", run: a.health},
	}

	return a
}

// Run executes args[0] with the remaining arguments and writes its result.
// Commands with nothing to report print nothing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	operands := args[1:]
	if len(operands) < cmd.minArgs || len(operands) > cmd.maxArgs {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	result, err := cmd.run(ctx, operands)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	return a.api.Register(ctx, args[0], args[1])
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	return a.api.Login(ctx, args[0], args[1])
}

func (a *App) logout(ctx context.Context, _ []string) (any, error) {
	return a.api.Logout(ctx)
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	return a.api.ListTodos(ctx)
}

func (a *App) add(ctx context.Context, args []string) (any, error) {
	return a.api.CreateTodo(ctx, todoRequest(args[0], args[1:], false))
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	return a.api.GetTodo(ctx, args[0])
}

// update replaces the todo wholesale: a missing description clears it and
// the todo becomes not completed.
func (a *App) update(ctx context.Context, args []string) (any, error) {
	return a.api.UpdateTodo(ctx, args[0], todoRequest(args[1], args[2:], false))
}

// done marks a todo completed, keeping its title and description.
func (a *App) done(ctx context.Context, args []string) (any, error) {
	todo, err := a.api.GetTodo(ctx, args[0])
	if err != nil {
		return nil, err
	}

	completed := true
	return a.api.UpdateTodo(ctx, todo.ID, models.TodoRequest{
		Title:       &todo.Title,
		Description: todo.Description,
		Completed:   &completed,
	})
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	return nil, a.api.DeleteTodo(ctx, args[0])
}

func (a *App) health(ctx context.Context, _ []string) (any, error) {
	return a.api.Health(ctx)
}

func todoRequest(title string, description []string, completed bool) models.TodoRequest {
	request := models.TodoRequest{
		Title:     &title,
		Completed: &completed,
	}
	if len(description) > 0 {
		request.Description = &description[0]
	}

	return request
}
