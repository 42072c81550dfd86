// ABOUTME: Demo scenarios, one per dialog flavor plus a queued burst
// ABOUTME: Each blocks on the dialog's Done channel and reports the outcome

package main

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/popup-go/pkg/popup"
)

func runAlert() error {
	d := popup.Alert("The **disk is almost full**. Free up space to keep saving files.",
		popup.WithTitle("Low Disk Space"),
		popup.WithIcon("⚠"),
	)
	res := <-d.Done()
	fmt.Printf("alert acknowledged with %v\n", res.Value)
	return nil
}

func runConfirm() error {
	d := popup.Confirm("Delete *42 files*? This cannot be undone.",
		popup.WithTitle("Confirm Deletion"),
		popup.WithAcceptLabel("Delete"),
		popup.WithRejectLabel("Keep"),
	)
	res := <-d.Done()
	switch {
	case res.Cancelled:
		fmt.Println("confirm dismissed without an answer")
	case res.Value == true:
		fmt.Println("deletion confirmed")
	default:
		fmt.Println("deletion declined")
	}
	return nil
}

func runPrompt() error {
	d := popup.Prompt("What should the new branch be called?", "feature/",
		popup.WithTitle("New Branch"),
		popup.WithPlaceholder("branch name"),
	)
	answer, ok := d.Answer()
	if !ok {
		fmt.Println("prompt cancelled")
		return nil
	}
	fmt.Printf("creating branch %q\n", answer)
	return nil
}

func runSelect() error {
	d := popup.Select("Pick a region for the deployment:",
		[]string{"eu-west-1", "eu-central-1", "us-east-1", "us-west-2", "ap-southeast-2"},
		popup.WithTitle("Deployment Region"),
	)
	res := <-d.Done()
	if res.Cancelled {
		fmt.Println("no region selected")
		return nil
	}
	fmt.Printf("deploying to %v\n", res.Value)
	return nil
}

func runLoader() error {
	d := popup.Loader("Crunching numbers, hang tight...", true,
		popup.WithTitle("Working"),
	)
	d.DismissIn(3*time.Second, popup.Result{Kind: popup.ResultButton, Value: "finished"})
	res := <-d.Done()
	if res.Cancelled {
		fmt.Println("work cancelled by the user")
		return nil
	}
	fmt.Printf("work %v\n", res.Value)
	return nil
}

// runQueue enqueues several dialogs at once; the queue presents them one at
// a time in FIFO order while each goroutine waits on its own dialog.
func runQueue() error {
	var g errgroup.Group
	for i := 1; i <= 3; i++ {
		g.Go(func() error {
			d := popup.Alert(fmt.Sprintf("Message %d of 3", i),
				popup.WithTitle(fmt.Sprintf("Queued Dialog #%d", i)),
			)
			res := <-d.Done()
			if res.Cancelled {
				return fmt.Errorf("dialog %d dismissed before acknowledgement", i)
			}
			fmt.Printf("dialog %d acknowledged\n", i)
			return nil
		})
	}
	return g.Wait()
}
