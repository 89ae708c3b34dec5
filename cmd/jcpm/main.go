package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2lib "github.com/aws/aws-sdk-go-v2/service/ec2"
	_ "github.com/jimmicro/version"
	jcpec2 "github.com/jimyag/jcp/pkg/ec2"
)

func main() {
	ctx := context.Background()
	c, err := jcpec2.New(ctx, os.Getenv("AWS_REGION"))
	if err != nil {
		log.Fatalf("failed to create ec2 client: %v", err)
	}

	// 获取所有实例的摘要信息
	fmt.Println("=== All Instances ===")
	output, err := c.DescribeInstances(ctx, &ec2lib.DescribeInstancesInput{})
	if err != nil {
		log.Fatalf("failed to describe instances: %v", err)
	}

	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			state := ""
			if instance.State != nil {
				state = string(instance.State.Name)
			}
			fmt.Printf("%s\t%s\t%s\t%s\n",
				aws.ToString(instance.InstanceId),
				string(instance.InstanceType),
				state,
				aws.ToString(instance.PublicIpAddress),
			)
		}
	}

	fmt.Println("\ndone")
}
