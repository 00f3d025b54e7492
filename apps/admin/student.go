package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trezcool/courseadmin/apps"
	"github.com/trezcool/courseadmin/core/student"
)

// fieldsFlag collects repeated -set FIELD=VALUE flags. JSON values are decoded, anything else is a string.
type fieldsFlag student.Fields

func (f fieldsFlag) String() string {
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (f fieldsFlag) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
		return fmt.Errorf("expected FIELD=VALUE, got %q", s)
	}
	var val interface{}
	if err := json.Unmarshal([]byte(kv[1]), &val); err != nil {
		val = kv[1]
	}
	f[strings.TrimSpace(kv[0])] = val
	return nil
}

func (cli *commandLine) printStudentUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  student update -id ID -name NAME -email EMAIL - replace a student record")
	fmt.Fprintln(cli.out, "  student patch -id ID -set FIELD=VALUE        - change some fields of a student record")
	fmt.Fprintln(cli.out, "  student delete -id ID                        - delete a student record")
	fmt.Fprintln(cli.out, "  student options                              - list the methods the students endpoint allows")
}

func (cli *commandLine) student(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printStudentUsage()
		return errHelp
	}
	svc := student.NewService(cli.client, cli.logger)

	updateCmd := cli.newFlagSet("student update")
	updateID := updateCmd.String("id", "", "The student id.")
	updateName := updateCmd.String("name", "", "The student's name.")
	updateEmail := updateCmd.String("email", "", "The student's email.")

	patchCmd := cli.newFlagSet("student patch")
	patchID := patchCmd.String("id", "", "The student id.")
	patchFields := make(fieldsFlag)
	patchCmd.Var(patchFields, "set", "A FIELD=VALUE pair to change (repeatable).")

	deleteCmd := cli.newFlagSet("student delete")
	deleteID := deleteCmd.String("id", "", "The student id.")

	var (
		res json.RawMessage
		err error
	)
	switch args[0] {
	case "update":
		if err := parse(updateCmd, args[1:]); err != nil {
			return err
		}
		res, err = svc.Update(ctx, *updateID, student.Student{Name: *updateName, Email: *updateEmail})
	case "patch":
		if err := parse(patchCmd, args[1:]); err != nil {
			return err
		}
		res, err = svc.Patch(ctx, *patchID, student.Fields(patchFields))
	case "delete":
		if err := parse(deleteCmd, args[1:]); err != nil {
			return err
		}
		res, err = svc.Delete(ctx, *deleteID)
	case "options":
		res, err = svc.Options(ctx)
	default:
		cli.printStudentUsage()
		return apps.NewArgumentError(fmt.Sprintf("%q: no such student command", args[0]))
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cli.out, string(res))
	return err
}
