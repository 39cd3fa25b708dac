package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mjpark-dev/boardapp/internal/client/api"
)

func formatBoard(b *api.Board) string {
	return fmt.Sprintf("%s  [%s]  %s", b.ID, b.Status, b.Title)
}

// boardID resolves the target board id either from command arguments or by
// prompting the user.
func (a *App) boardID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter board id", os.Stdout)
}

func (a *App) create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	board, err := a.api.CreateBoard(ctx, title, description)
	if err != nil {
		return err
	}

	printlnFn("Created:", formatBoard(board))
	return nil
}

func (a *App) list(ctx context.Context) error {
	boards, err := a.api.ListBoards(ctx)
	if err != nil {
		return err
	}

	if len(boards) == 0 {
		printlnFn("No boards yet.")
		return nil
	}
	for i := range boards {
		printlnFn(formatBoard(&boards[i]))
	}
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := a.boardID(args)
	if err != nil {
		return err
	}

	board, err := a.api.GetBoard(ctx, id)
	if err != nil {
		return err
	}

	printlnFn("Id:         ", board.ID)
	printlnFn("Title:      ", board.Title)
	printlnFn("Description:", board.Description)
	printlnFn("Status:     ", board.Status)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := a.boardID(args)
	if err != nil {
		return err
	}

	if err := a.api.DeleteBoard(ctx, id); err != nil {
		return err
	}

	printlnFn("Deleted.")
	return nil
}

func (a *App) status(ctx context.Context, args []string) error {
	id, err := a.boardID(args)
	if err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Enter new status (PRIVATE or PUBLIC)", os.Stdout)
	if err != nil {
		return err
	}

	board, err := a.api.UpdateBoardStatus(ctx, id, status)
	if err != nil {
		return err
	}

	printlnFn("Updated:", formatBoard(board))
	return nil
}

func (a *App) ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	printlnFn("Server is up.")
	return nil
}
